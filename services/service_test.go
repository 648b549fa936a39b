package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/coredmp95/recipe-api/config"
	"github.com/coredmp95/recipe-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB swaps config.DB for a fresh in-memory sqlite database, named
// after the test so parallel packages don't collide.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	))

	config.DB = db
}

func createTestUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "not-a-real-hash", Name: "Test User"}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func sampleRecipeInput() RecipeInput {
	return RecipeInput{
		Title:       "Sample recipe title",
		TimeMinutes: 22,
		Price:       5.25,
		Link:        "http://example.com/recipe.pdf",
		Description: "Sample Description",
	}
}
