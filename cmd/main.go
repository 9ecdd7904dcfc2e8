package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"macrofit/database"
	"macrofit/docs"
	"macrofit/internal/cache"
	"macrofit/internal/controllers"
	"macrofit/internal/openai"
	"macrofit/internal/repository"
	"macrofit/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "MacroFit API"
	docs.SwaggerInfo.Description = "Nutrition targets and weekly meal/workout planning API."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Connect to Redis for the weekly plan cache
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	nutritionRepo := repository.NewNutritionEntryRepository(database.DB)
	workoutRepo := repository.NewWorkoutRepository(database.DB)

	// The macro advisor is optional; without an API key every request uses
	// the deterministic calculator.
	var advisor controllers.MacroAdvisor
	if openaiClient, err := openai.NewClient(); err != nil {
		log.Printf("Macro advisor disabled: %v", err)
	} else {
		advisor = openaiClient
	}

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	profileController := controllers.NewUserProfileController(profileRepo)
	nutritionController := controllers.NewNutritionController(nutritionRepo)
	workoutController := controllers.NewWorkoutController(workoutRepo)
	macrosController := controllers.NewMacrosController(profileRepo, advisor)
	planController := controllers.NewPlanController(profileRepo, nutritionRepo, workoutRepo, redisClient)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "MacroFit API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
			"cache":    "Redis",
		})
	})

	routes.RegisterSwaggerRoutes(router)
	routes.RegisterUserRoutes(router, userController)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterNutritionRoutes(router, nutritionController)
	routes.RegisterWorkoutRoutes(router, workoutController)
	routes.RegisterMacrosRoutes(router, macrosController)
	routes.RegisterPlanRoutes(router, planController)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
