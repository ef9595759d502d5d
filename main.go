package main

import (
	"log"
	"net/http"
	"os"

	"qna-board/config"
	"qna-board/handlers"
	"qna-board/middleware"
	"qna-board/repositories"
	"qna-board/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	questionService := services.NewQuestionService(questionRepo, answerRepo, userRepo)
	answerService := services.NewAnswerService(answerRepo, questionRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public read routes
		v1.GET("/questions", questionHandler.List)
		v1.GET("/questions/:id", questionHandler.Detail)
		v1.GET("/answers/:id", answerHandler.Get)

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Questions
			questions := protected.Group("/questions")
			{
				questions.POST("", questionHandler.Create)
				questions.PUT("/:id", questionHandler.Update)
				questions.DELETE("/:id", questionHandler.Delete)
				questions.POST("/:id/vote", questionHandler.Vote)
				questions.POST("/:id/answers", answerHandler.Create)
			}

			// Answers
			answers := protected.Group("/answers")
			{
				answers.PUT("/:id", answerHandler.Update)
				answers.DELETE("/:id", answerHandler.Delete)
				answers.POST("/:id/vote", answerHandler.Vote)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
