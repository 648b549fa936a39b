package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coredmp95/recipe-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListIngredients(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	assignedOnly := c.Query("assigned_only") == "1" || c.Query("assigned_only") == "true"

	ingredients, err := services.ListIngredients(userID, assignedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func CreateIngredient(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := services.CreateIngredient(userID, input.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func UpdateIngredient(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	ingredientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := services.UpdateIngredient(userID, uint(ingredientID), input.Name)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		case errors.Is(err, services.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient name already in use"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func DeleteIngredient(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	ingredientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	if err := services.DeleteIngredient(userID, uint(ingredientID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
