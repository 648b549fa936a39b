package main

import (
    "os"

    "github.com/coredmp95/recipe-api/config"
    "github.com/coredmp95/recipe-api/routes"
    "github.com/coredmp95/recipe-api/utils"
)

func main() {
    config.InitDB()
    utils.InitS3()
    r := routes.SetupRouter()

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }
    r.Run(":" + port)
}
