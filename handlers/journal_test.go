package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ajanda-server/database"
	"ajanda-server/models"
	"ajanda-server/sentiment"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupJournalTest(t *testing.T) *gin.Engine {
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
	r.GET("/api/journal/user/:user_id", GetUserEntries)
	r.GET("/api/journal/:id", GetEntry)
	r.POST("/api/journal", CreateEntry)
	r.PUT("/api/journal/:id", UpdateEntry)
	r.DELETE("/api/journal/:id", DeleteEntry)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateEntryAnalyzesSentiment(t *testing.T) {
	r := setupJournalTest(t)

	w := doJSON(r, "POST", "/api/journal", `{"title":"Güzel bir gün","content":"bugün çok mutluyum","user_id":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var entry models.JournalEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if entry.Sentiment == nil {
		t.Fatal("created entry has no sentiment")
	}
	if entry.Sentiment.SentimentLabel != sentiment.LabelPositive {
		t.Errorf("label = %s, want Positive", entry.Sentiment.SentimentLabel)
	}
}

func TestUpdateEntryReanalyzesInPlace(t *testing.T) {
	r := setupJournalTest(t)

	w := doJSON(r, "POST", "/api/journal", `{"title":"Gün","content":"çok mutluyum","user_id":1}`)
	var created models.JournalEntry
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}

	w = doJSON(r, "PUT", "/api/journal/1", `{"title":"Gün","content":"çok üzgünüm","user_id":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}

	var count int64
	database.DB.Model(&models.JournalSentiment{}).Where("journal_entry_id = ?", created.ID).Count(&count)
	if count != 1 {
		t.Fatalf("sentiment rows = %d, want exactly 1", count)
	}

	var record models.JournalSentiment
	database.DB.Where("journal_entry_id = ?", created.ID).First(&record)
	if record.SentimentLabel != sentiment.LabelNegative {
		t.Errorf("label after update = %s, want Negative", record.SentimentLabel)
	}
}

func TestDeleteEntryRemovesSentiment(t *testing.T) {
	r := setupJournalTest(t)

	doJSON(r, "POST", "/api/journal", `{"title":"Gün","content":"mutlu","user_id":1}`)

	w := doJSON(r, "DELETE", "/api/journal/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	var count int64
	database.DB.Model(&models.JournalSentiment{}).Count(&count)
	if count != 0 {
		t.Errorf("sentiment rows after delete = %d, want 0", count)
	}
}

func TestCreateEntryRequiresUser(t *testing.T) {
	r := setupJournalTest(t)

	w := doJSON(r, "POST", "/api/journal", `{"title":"Gün","content":"mutlu"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetEntryNotFound(t *testing.T) {
	r := setupJournalTest(t)

	w := doJSON(r, "GET", "/api/journal/99", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
