package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ajanda-server/database"
	"ajanda-server/models"
	"ajanda-server/sentiment"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProfileTest(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.JournalEntry{}, &models.JournalSentiment{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	database.DB = db

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/profile/mood-history/:user_id", GetMoodHistory)
	r.GET("/api/profile/sentiment/:journal_entry_id", GetEntrySentiment)
	return r
}

func seedEntry(t *testing.T, userID uint, title, content string) models.JournalEntry {
	t.Helper()

	entry := models.JournalEntry{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Date:      time.Now().UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	if _, err := sentiment.NewStore(database.DB).AnalyzeAndSave(entry.ID, content); err != nil {
		t.Fatalf("seed sentiment: %v", err)
	}
	return entry
}

func TestMoodHistorySummarizesSentiments(t *testing.T) {
	r := setupProfileTest(t)
	seedEntry(t, 1, "iyi gün", "bugün çok mutluyum")
	seedEntry(t, 1, "kötü gün", "çok üzgünüm")
	seedEntry(t, 2, "başkasının günü", "harika")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/profile/mood-history/1?days=7", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var response struct {
		History []MoodHistoryItem `json:"history"`
		Summary MoodSummary       `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if len(response.History) != 2 {
		t.Fatalf("history length = %d, want 2 (scoped to user 1)", len(response.History))
	}
	if response.Summary.TotalEntries != 2 || response.Summary.PositiveCount != 1 || response.Summary.NegativeCount != 1 {
		t.Errorf("summary = %+v", response.Summary)
	}
}

func TestMoodHistoryDefaultsMissingSentiment(t *testing.T) {
	r := setupProfileTest(t)

	entry := models.JournalEntry{
		UserID:    1,
		Title:     "analizsiz",
		Date:      time.Now().UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/profile/mood-history/1", nil))

	var response struct {
		History []MoodHistoryItem `json:"history"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(response.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(response.History))
	}
	item := response.History[0]
	if item.SentimentLabel != sentiment.LabelNeutral || item.SentimentScore != 0.5 {
		t.Errorf("item = %+v, want Neutral/0.5 fallback", item)
	}
}

func TestGetEntrySentimentNotFound(t *testing.T) {
	r := setupProfileTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/profile/sentiment/42", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
