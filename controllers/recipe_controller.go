package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/coredmp95/recipe-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDList turns "1,2,3" into ids. Blank query → nil (no filter).
func parseIDList(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func ListRecipes(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	tagIDs, err := parseIDList(c.Query("tags"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'tags' query param"})
		return
	}
	ingredientIDs, err := parseIDList(c.Query("ingredients"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'ingredients' query param"})
		return
	}

	recipes, err := services.ListRecipes(userID, tagIDs, ingredientIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func CreateRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.CreateRecipe(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func GetRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := services.GetRecipe(userID, uint(recipeID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ReplaceRecipe handles PUT: every field is overwritten, including both
// association sets (omitting tags in a PUT clears them).
func ReplaceRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	full := services.RecipeUpdateInput{
		Title:       &input.Title,
		TimeMinutes: &input.TimeMinutes,
		Price:       &input.Price,
		Link:        &input.Link,
		Description: &input.Description,
		Tags:        &input.Tags,
		Ingredients: &input.Ingredients,
	}

	recipe, err := services.UpdateRecipe(userID, uint(recipeID), full)
	if err != nil {
		respondRecipeWriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe handles PATCH: absent fields stay untouched, a present tags or
// ingredients key (even []) replaces that association set wholesale.
func UpdateRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var input services.RecipeUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.UpdateRecipe(userID, uint(recipeID), input)
	if err != nil {
		respondRecipeWriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func DeleteRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := services.DeleteRecipe(userID, uint(recipeID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func respondRecipeWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
	case errors.Is(err, services.ErrEmptyName), errors.Is(err, services.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
