package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	apperrors "github.com/Hanikakadiya/Master-Quiz/internal/pkg/errors"
	pgRepo "github.com/Hanikakadiya/Master-Quiz/internal/repository/postgres"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
)

// SeedFile — формат YAML-файла с категориями и вопросами
type SeedFile struct {
	Categories []SeedCategory `yaml:"categories"`
}

// SeedCategory — категория в файле наполнения
type SeedCategory struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Icon        string         `yaml:"icon"`
	Questions   []SeedQuestion `yaml:"questions"`
}

// SeedQuestion — вопрос в файле наполнения
type SeedQuestion struct {
	Text       string                `yaml:"text"`
	Difficulty string                `yaml:"difficulty"`
	Options    []service.OptionInput `yaml:"options"`
}

// SeedStats — итог наполнения
type SeedStats struct {
	Categories        int
	SkippedCategories int
	Questions         int
}

// NewSeedCmd загружает категории и вопросы из YAML
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed FILE",
		Short: "Load categories and questions from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			_, db, err := openDB(*configPath)
			if err != nil {
				return err
			}
			defer closeDB(db)

			admin := service.NewAdminService(pgRepo.NewCategoryRepo(db), pgRepo.NewQuestionRepo(db))
			stats, err := Seed(cmd.Context(), f, admin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "categories created: %d, skipped: %d, questions created: %d\n",
				stats.Categories, stats.SkippedCategories, stats.Questions)
			return nil
		},
	}
}

// Seed создаёт категории и вопросы из YAML. Категории, которые уже существуют, пропускаются целиком;
// любой невалидный вопрос прерывает наполнение.
func Seed(ctx context.Context, r io.Reader, admin *service.AdminService) (SeedStats, error) {
	var stats SeedStats

	var file SeedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return stats, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, sc := range file.Categories {
		category, err := admin.CreateCategory(ctx, service.CategoryInput{
			Name:        sc.Name,
			Description: sc.Description,
			Icon:        sc.Icon,
		})
		if errors.Is(err, apperrors.ErrConflict) {
			log.Printf("[Seed] Категория %q уже существует, пропускаем", sc.Name)
			stats.SkippedCategories++
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("category %q: %w", sc.Name, err)
		}
		stats.Categories++

		for i, sq := range sc.Questions {
			_, err := admin.CreateQuestion(ctx, category.ID, service.QuestionInput{
				Text:       sq.Text,
				Difficulty: entity.Difficulty(sq.Difficulty),
				Options:    sq.Options,
			})
			if err != nil {
				return stats, fmt.Errorf("category %q question #%d: %w", sc.Name, i+1, err)
			}
			stats.Questions++
		}
	}
	return stats, nil
}
