package controllers

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strconv"

	"github.com/coredmp95/recipe-api/services"
	"github.com/coredmp95/recipe-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadRecipeImage accepts a multipart "image" file (JPEG or PNG), stores it
// on S3 and records the URL on the recipe.
func UploadRecipeImage(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	// ownership check first, before touching storage
	if _, err := services.GetRecipe(userID, uint(recipeID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'image' file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}

	// reject anything that does not decode as a real image
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file is not a valid image"})
		return
	}

	contentType := "image/jpeg"
	if format == "png" {
		contentType = "image/png"
	}

	url, err := utils.UploadRecipeImage(uint(recipeID), data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	recipe, err := services.SaveRecipeImage(userID, uint(recipeID), url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": recipe.ImageURL})
}
