package models

import "time"

type Goal struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Type          string     `json:"type"`     // Daily, Weekly, Monthly, Yearly
	Category      string     `json:"category"` // Personal, Work, Health, Learning, ...
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Status        string     `json:"status"`
	Priority      int        `json:"priority"` // 1-5
	TargetValue   float64    `json:"target_value"`
	CurrentValue  float64    `json:"current_value"`
	Unit          string     `json:"unit"` // e.g. "books", "km", "hours"
	IsCompleted   bool       `json:"is_completed"`
	CompletedDate *time.Time `json:"completed_date"`
	Color         string     `json:"color"`
	Icon          string     `json:"icon"`
	Tags          string     `json:"tags"`
	UserID        uint       `json:"user_id" gorm:"index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type Habit struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Icon            string     `json:"icon"`
	Color           string     `json:"color"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	TargetFrequency int        `json:"target_frequency"` // times per period
	FrequencyUnit   string     `json:"frequency_unit"`   // day, week, month
	IsActive        bool       `json:"is_active"`
	ReminderTime    string     `json:"reminder_time"` // HH:mm
	UserID          uint       `json:"user_id" gorm:"index"`
	CreatedAt       time.Time  `json:"created_at"`

	Completions []HabitCompletion `json:"completions,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type HabitCompletion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	HabitID     uint      `json:"habit_id" gorm:"index:idx_habit_date,unique"`
	Date        string    `json:"date" gorm:"index:idx_habit_date,unique"` // YYYY-MM-DD
	CompletedAt time.Time `json:"completed_at"`
}
