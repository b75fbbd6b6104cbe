package main

import (
	"log"
	"os"

	"ajanda-server/database"
	"ajanda-server/handlers"
	"ajanda-server/llm"

	"github.com/gin-gonic/gin"
)

func newGenerator() llm.CommandGenerator {
	switch os.Getenv("LLM_BACKEND") {
	case "ollama":
		return llm.NewOllamaClient()
	case "openai":
		return llm.NewOpenAIClient()
	default:
		return llm.NewGeminiClient()
	}
}

func main() {
	database.InitDB()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	generator := newGenerator()

	api := r.Group("/api")
	{
		api.GET("/journal/user/:user_id", handlers.GetUserEntries)
		api.GET("/journal/:id", handlers.GetEntry)
		api.POST("/journal", handlers.CreateEntry)
		api.PUT("/journal/:id", handlers.UpdateEntry)
		api.DELETE("/journal/:id", handlers.DeleteEntry)

		api.POST("/chat", handlers.Chat(generator))

		api.GET("/profile/mood-history/:user_id", handlers.GetMoodHistory)
		api.GET("/profile/sentiment/:journal_entry_id", handlers.GetEntrySentiment)

		api.GET("/goals/user/:user_id", handlers.GetUserGoals)
		api.POST("/goals", handlers.CreateGoal)
		api.PUT("/goals/:id", handlers.UpdateGoal)
		api.PATCH("/goals/:id/progress", handlers.UpdateGoalProgress)
		api.DELETE("/goals/:id", handlers.DeleteGoal)

		api.GET("/habits/user/:user_id", handlers.GetUserHabits)
		api.POST("/habits", handlers.CreateHabit)
		api.PUT("/habits/:id", handlers.UpdateHabit)
		api.POST("/habits/:id/toggle", handlers.ToggleCompletion)
		api.DELETE("/habits/:id", handlers.DeleteHabit)

		api.GET("/stats/:user_id", handlers.GetUserStats)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	log.Println("🚀 Starting Ajanda Server on :" + port)

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
