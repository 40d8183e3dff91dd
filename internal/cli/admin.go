package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	pgRepo "github.com/Hanikakadiya/Master-Quiz/internal/repository/postgres"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
	"github.com/Hanikakadiya/Master-Quiz/pkg/auth"
)

// NewAdminCmd управляет администраторами
func NewAdminCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}

	var username, email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB(*configPath)
			if err != nil {
				return err
			}
			defer closeDB(db)

			jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs, cfg.JWT.Issuer)
			if err != nil {
				return err
			}
			authService := service.NewAuthService(pgRepo.NewUserRepo(db), jwtService)

			res, err := authService.Register(cmd.Context(), username, email, password, entity.RoleAdmin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created with id %d\n", res.User.Username, res.User.ID)
			return nil
		},
	}
	create.Flags().StringVar(&username, "username", "", "admin username")
	create.Flags().StringVar(&email, "email", "", "admin e-mail")
	create.Flags().StringVar(&password, "password", "", "admin password")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")
	cmd.AddCommand(create)

	return cmd
}
