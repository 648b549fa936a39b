package routes

import (
    "github.com/coredmp95/recipe-api/controllers"
    "github.com/coredmp95/recipe-api/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", controllers.GetProfile)
        user.PUT("/profile", controllers.UpdateProfile)
    }

    // Protected recipe API
    api := r.Group("/api")
    api.Use(middlewares.AuthMiddleware())
    {
        api.GET("/recipes", controllers.ListRecipes)
        api.POST("/recipes", controllers.CreateRecipe)
        api.GET("/recipes/:id", controllers.GetRecipe)
        api.PUT("/recipes/:id", controllers.ReplaceRecipe)
        api.PATCH("/recipes/:id", controllers.UpdateRecipe)
        api.DELETE("/recipes/:id", controllers.DeleteRecipe)
        api.POST("/recipes/:id/image", controllers.UploadRecipeImage)

        api.GET("/tags", controllers.ListTags)
        api.POST("/tags", controllers.CreateTag)
        api.PATCH("/tags/:id", controllers.UpdateTag)
        api.DELETE("/tags/:id", controllers.DeleteTag)

        api.GET("/ingredients", controllers.ListIngredients)
        api.POST("/ingredients", controllers.CreateIngredient)
        api.PATCH("/ingredients/:id", controllers.UpdateIngredient)
        api.DELETE("/ingredients/:id", controllers.DeleteIngredient)
    }

    return r
}
