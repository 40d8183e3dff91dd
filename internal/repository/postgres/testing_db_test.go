package postgres

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
)

// newTestDB создаёт изолированную in-memory базу SQLite со схемой приложения
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "Не удалось открыть SQLite")

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Question{},
		&entity.Option{},
		&entity.Result{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string, questions int) *entity.Category {
	t.Helper()
	category := &entity.Category{Name: name, Icon: entity.DefaultCategoryIcon}
	require.NoError(t, db.Create(category).Error)
	for i := 0; i < questions; i++ {
		q := &entity.Question{
			CategoryID: category.ID,
			Text:       fmt.Sprintf("%s question %d", name, i+1),
			Difficulty: entity.DifficultyEasy,
			Options: []entity.Option{
				{Text: "A", IsCorrect: true},
				{Text: "B"},
				{Text: "C"},
				{Text: "D"},
			},
		}
		require.NoError(t, db.Create(q).Error)
	}
	return category
}
