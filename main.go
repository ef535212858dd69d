package main

import (
	"log"

	"github.com/Ayush5112006/dduhack-sub002/config"
	"github.com/Ayush5112006/dduhack-sub002/database"
	_ "github.com/Ayush5112006/dduhack-sub002/docs"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	v1 "github.com/Ayush5112006/dduhack-sub002/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title DduHack API
// @version 1.0
// @description Hackathon participation lifecycle API: registrations, teams, submissions, judging and winner announcements
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Load()

	database.InitDB()
	database.InitRedis()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Background collector for the runtime and system gauges
	middleware.UpdateSystemMetrics()

	v1.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Listening on :%s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
