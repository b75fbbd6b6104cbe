package handlers

import (
	"net/http"
	"time"

	"ajanda-server/database"
	"ajanda-server/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetUserHabits(c *gin.Context) {
	db := database.GetDB()

	query := db.Where("user_id = ?", c.Param("user_id"))
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var habits []models.Habit
	if err := query.Preload("Completions").Order("created_at DESC").Find(&habits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, habits)
}

func CreateHabit(c *gin.Context) {
	var habit models.Habit
	if err := c.ShouldBindJSON(&habit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if habit.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	habit.ID = 0
	if habit.TargetFrequency == 0 {
		habit.TargetFrequency = 1
	}
	if habit.FrequencyUnit == "" {
		habit.FrequencyUnit = "day"
	}
	habit.IsActive = true
	habit.CreatedAt = time.Now().UTC()

	if err := database.GetDB().Create(&habit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save habit"})
		return
	}

	c.JSON(http.StatusCreated, habit)
}

func UpdateHabit(c *gin.Context) {
	db := database.GetDB()

	var existing models.Habit
	if err := db.First(&existing, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var habit models.Habit
	if err := c.ShouldBindJSON(&habit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	existing.Title = habit.Title
	existing.Description = habit.Description
	existing.Icon = habit.Icon
	existing.Color = habit.Color
	existing.StartDate = habit.StartDate
	existing.EndDate = habit.EndDate
	existing.TargetFrequency = habit.TargetFrequency
	existing.FrequencyUnit = habit.FrequencyUnit
	existing.IsActive = habit.IsActive
	existing.ReminderTime = habit.ReminderTime

	if err := db.Save(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save habit"})
		return
	}

	c.JSON(http.StatusOK, existing)
}

type ToggleRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}

// ToggleCompletion flips a habit's completion for one day: creates the row if
// missing, removes it if present.
func ToggleCompletion(c *gin.Context) {
	db := database.GetDB()

	var habit models.Habit
	if err := db.First(&habit, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var request ToggleRequest
	_ = c.ShouldBindJSON(&request)
	if request.Date == "" {
		request.Date = time.Now().UTC().Format("2006-01-02")
	}

	var completion models.HabitCompletion
	err := db.Where("habit_id = ? AND date = ?", habit.ID, request.Date).First(&completion).Error
	if err == nil {
		if err := db.Delete(&completion).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove completion"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"completed": false, "date": request.Date})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	completion = models.HabitCompletion{
		HabitID:     habit.ID,
		Date:        request.Date,
		CompletedAt: time.Now().UTC(),
	}
	if err := db.Create(&completion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save completion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": true, "date": request.Date})
}

func DeleteHabit(c *gin.Context) {
	db := database.GetDB()

	var habit models.Habit
	if err := db.First(&habit, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	db.Where("habit_id = ?", habit.ID).Delete(&models.HabitCompletion{})

	if err := db.Delete(&habit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete habit"})
		return
	}

	c.Status(http.StatusNoContent)
}
