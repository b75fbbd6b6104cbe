package handlers

import (
	"net/http"
	"strconv"
	"time"

	"ajanda-server/database"
	"ajanda-server/models"
	"ajanda-server/sentiment"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MoodHistoryItem struct {
	Date           time.Time `json:"date"`
	Title          string    `json:"title"`
	SentimentLabel string    `json:"sentiment_label"`
	SentimentScore float64   `json:"sentiment_score"`
	Mood           string    `json:"mood"`
	MoodScore      int       `json:"mood_score"`
}

type MoodSummary struct {
	TotalEntries  int     `json:"total_entries"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
	NeutralCount  int     `json:"neutral_count"`
	AverageScore  float64 `json:"average_score"`
}

// GetMoodHistory feeds the mood chart on the profile page: one item per
// journal entry in the window, plus aggregate counts. Entries without a stored
// sentiment row report Neutral/0.5.
func GetMoodHistory(c *gin.Context) {
	db := database.GetDB()

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	startDate := time.Now().UTC().AddDate(0, 0, -days)

	var entries []models.JournalEntry
	err := db.Where("user_id = ? AND created_at >= ?", c.Param("user_id"), startDate).
		Preload("Sentiment").
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	history := make([]MoodHistoryItem, 0, len(entries))
	summary := MoodSummary{AverageScore: 0.5}
	scoreSum := 0.0

	for _, entry := range entries {
		item := MoodHistoryItem{
			Date:           entry.Date,
			Title:          entry.Title,
			SentimentLabel: sentiment.LabelNeutral,
			SentimentScore: 0.5,
			Mood:           entry.Mood,
			MoodScore:      entry.MoodScore,
		}
		if entry.Sentiment != nil {
			item.SentimentLabel = entry.Sentiment.SentimentLabel
			item.SentimentScore = entry.Sentiment.SentimentScore
		}
		history = append(history, item)

		scoreSum += item.SentimentScore
		switch item.SentimentLabel {
		case sentiment.LabelPositive:
			summary.PositiveCount++
		case sentiment.LabelNegative:
			summary.NegativeCount++
		default:
			summary.NeutralCount++
		}
	}

	summary.TotalEntries = len(history)
	if summary.TotalEntries > 0 {
		summary.AverageScore = scoreSum / float64(summary.TotalEntries)
	}

	c.JSON(http.StatusOK, gin.H{"history": history, "summary": summary})
}

func GetEntrySentiment(c *gin.Context) {
	db := database.GetDB()

	var record models.JournalSentiment
	err := db.Where("journal_entry_id = ?", c.Param("journal_entry_id")).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No sentiment analysis for this entry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, record)
}
