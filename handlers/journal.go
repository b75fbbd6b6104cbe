package handlers

import (
	"log"
	"net/http"
	"time"

	"ajanda-server/database"
	"ajanda-server/models"
	"ajanda-server/sentiment"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetUserEntries(c *gin.Context) {
	db := database.GetDB()

	var entries []models.JournalEntry
	err := db.Where("user_id = ?", c.Param("user_id")).
		Preload("Sentiment").
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func GetEntry(c *gin.Context) {
	db := database.GetDB()

	var entry models.JournalEntry
	if err := db.Preload("Sentiment").First(&entry, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func CreateEntry(c *gin.Context) {
	var entry models.JournalEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if entry.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	db := database.GetDB()

	entry.ID = 0
	entry.Sentiment = nil
	entry.Date = entry.Date.UTC()
	entry.CreatedAt = time.Now().UTC()
	entry.UpdatedAt = nil

	if err := db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry"})
		return
	}

	// First-time analysis: the entry was just created, so no sentiment row
	// can exist yet. Analysis failures never fail the entry save.
	store := sentiment.NewStore(db)
	if saved, err := store.AnalyzeAndSave(entry.ID, entry.Content); err != nil {
		log.Println("Sentiment analysis failed for entry", entry.ID, ":", err)
	} else {
		entry.Sentiment = saved
	}

	c.JSON(http.StatusCreated, entry)
}

func UpdateEntry(c *gin.Context) {
	db := database.GetDB()

	var existing models.JournalEntry
	if err := db.First(&existing, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var entry models.JournalEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	now := time.Now().UTC()
	existing.Date = entry.Date.UTC()
	existing.Title = entry.Title
	existing.Content = entry.Content
	existing.Mood = entry.Mood
	existing.MoodScore = entry.MoodScore
	existing.Weather = entry.Weather
	existing.Location = entry.Location
	existing.Tags = entry.Tags
	existing.IsPrivate = entry.IsPrivate
	existing.UpdatedAt = &now

	if err := db.Save(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry"})
		return
	}

	// Content may have changed, so re-analysis goes through the upsert path.
	store := sentiment.NewStore(db)
	if saved, err := store.UpdateSentiment(existing.ID, existing.Content); err != nil {
		log.Println("Sentiment analysis failed for entry", existing.ID, ":", err)
	} else {
		existing.Sentiment = saved
	}

	c.JSON(http.StatusOK, existing)
}

func DeleteEntry(c *gin.Context) {
	db := database.GetDB()

	var entry models.JournalEntry
	if err := db.First(&entry, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// The sentiment row has no life of its own.
	db.Where("journal_entry_id = ?", entry.ID).Delete(&models.JournalSentiment{})

	if err := db.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}

	c.Status(http.StatusNoContent)
}
