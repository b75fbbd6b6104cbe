package handlers

import (
	"net/http"
	"time"

	"ajanda-server/database"
	"ajanda-server/models"

	"github.com/gin-gonic/gin"
)

func GetUserStats(c *gin.Context) {
	db := database.GetDB()
	userID := c.Param("user_id")

	var totalEntries int64
	var totalGoals int64
	var completedGoals int64
	var totalHabits int64
	var todayCompletions int64
	var avgSentiment float64

	db.Model(&models.JournalEntry{}).Where("user_id = ?", userID).Count(&totalEntries)

	db.Model(&models.Goal{}).Where("user_id = ?", userID).Count(&totalGoals)
	db.Model(&models.Goal{}).Where("user_id = ? AND is_completed = ?", userID, true).Count(&completedGoals)

	db.Model(&models.Habit{}).Where("user_id = ? AND is_active = ?", userID, true).Count(&totalHabits)

	today := time.Now().UTC().Format("2006-01-02")
	db.Model(&models.HabitCompletion{}).
		Joins("JOIN habits ON habits.id = habit_completions.habit_id").
		Where("habits.user_id = ? AND habit_completions.date = ?", userID, today).
		Count(&todayCompletions)

	row := db.Model(&models.JournalSentiment{}).
		Joins("JOIN journal_entries ON journal_entries.id = journal_sentiments.journal_entry_id").
		Where("journal_entries.user_id = ?", userID).
		Select("AVG(journal_sentiments.sentiment_score)").
		Row()
	if err := row.Scan(&avgSentiment); err != nil {
		avgSentiment = 0.5
	}

	stats := gin.H{
		"total_entries":     totalEntries,
		"total_goals":       totalGoals,
		"completed_goals":   completedGoals,
		"active_habits":     totalHabits,
		"today_completions": todayCompletions,
		"avg_sentiment":     avgSentiment,
	}

	c.JSON(http.StatusOK, stats)
}
