package models

import "time"

type JournalEntry struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Date      time.Time  `json:"date"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Mood      string     `json:"mood"` // 😊 😢 😡 😴 😐 etc.
	MoodScore int        `json:"mood_score"`
	Weather   string     `json:"weather"`
	Location  string     `json:"location"`
	Tags      string     `json:"tags"`
	IsPrivate bool       `json:"is_private"`
	UserID    uint       `json:"user_id" gorm:"index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	Sentiment *JournalSentiment `json:"sentiment,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// JournalSentiment holds the analysis result for a single journal entry.
// At most one row per entry, enforced by the unique index.
type JournalSentiment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	JournalEntryID uint      `json:"journal_entry_id" gorm:"uniqueIndex"`
	SentimentLabel string    `json:"sentiment_label" gorm:"size:20"`
	SentimentScore float64   `json:"sentiment_score"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
}
