package sentiment

import (
	"time"

	"ajanda-server/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists analysis results, one row per journal entry.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AnalyzeAndSave scores the content and inserts a fresh sentiment row. It is
// meant for first-time analysis only: a second insert for the same entry fails
// on the unique index, so re-analysis must go through UpdateSentiment.
func (s *Store) AnalyzeAndSave(journalEntryID uint, content string) (*models.JournalSentiment, error) {
	result := Analyze(content)

	record := models.JournalSentiment{
		JournalEntryID: journalEntryID,
		SentimentLabel: result.Label,
		SentimentScore: result.Score,
		AnalyzedAt:     time.Now().UTC(),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateSentiment re-scores the content and writes the result as a single
// atomic upsert keyed on journal_entry_id. Safe under concurrent re-analysis
// of the same entry and always succeeds whether or not a row exists yet.
func (s *Store) UpdateSentiment(journalEntryID uint, content string) (*models.JournalSentiment, error) {
	result := Analyze(content)

	record := models.JournalSentiment{
		JournalEntryID: journalEntryID,
		SentimentLabel: result.Label,
		SentimentScore: result.Score,
		AnalyzedAt:     time.Now().UTC(),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "journal_entry_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sentiment_label", "sentiment_score", "analyzed_at"}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}

	// The upsert does not report back the surviving row's ID on conflict.
	var saved models.JournalSentiment
	if err := s.db.Where("journal_entry_id = ?", journalEntryID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}
