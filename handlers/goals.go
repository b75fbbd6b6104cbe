package handlers

import (
	"net/http"
	"time"

	"ajanda-server/database"
	"ajanda-server/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetUserGoals(c *gin.Context) {
	db := database.GetDB()

	query := db.Where("user_id = ?", c.Param("user_id"))
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var goals []models.Goal
	if err := query.Order("created_at DESC").Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goals)
}

func CreateGoal(c *gin.Context) {
	var goal models.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if goal.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	goal.ID = 0
	if goal.Status == "" {
		goal.Status = "NotStarted"
	}
	goal.CreatedAt = time.Now().UTC()
	goal.UpdatedAt = nil

	if err := database.GetDB().Create(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

func UpdateGoal(c *gin.Context) {
	db := database.GetDB()

	var existing models.Goal
	if err := db.First(&existing, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var goal models.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	now := time.Now().UTC()
	existing.Title = goal.Title
	existing.Description = goal.Description
	existing.Type = goal.Type
	existing.Category = goal.Category
	existing.StartDate = goal.StartDate
	existing.EndDate = goal.EndDate
	existing.Status = goal.Status
	existing.Priority = goal.Priority
	existing.TargetValue = goal.TargetValue
	existing.CurrentValue = goal.CurrentValue
	existing.Unit = goal.Unit
	existing.Color = goal.Color
	existing.Icon = goal.Icon
	existing.Tags = goal.Tags
	existing.UpdatedAt = &now

	if err := db.Save(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	c.JSON(http.StatusOK, existing)
}

type ProgressRequest struct {
	CurrentValue float64 `json:"current_value"`
}

func UpdateGoalProgress(c *gin.Context) {
	db := database.GetDB()

	var goal models.Goal
	if err := db.First(&goal, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var request ProgressRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	now := time.Now().UTC()
	goal.CurrentValue = request.CurrentValue
	if goal.TargetValue > 0 && goal.CurrentValue >= goal.TargetValue && !goal.IsCompleted {
		goal.IsCompleted = true
		goal.Status = "Completed"
		goal.CompletedDate = &now
	}
	goal.UpdatedAt = &now

	if err := db.Save(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func DeleteGoal(c *gin.Context) {
	db := database.GetDB()

	var goal models.Goal
	if err := db.First(&goal, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := db.Delete(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	c.Status(http.StatusNoContent)
}
