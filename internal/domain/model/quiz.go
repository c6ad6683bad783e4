package model

import "time"

// Quiz is a self-assessment questionnaire offered to the general
// population segment.
type Quiz struct {
	ID          int64
	Title       string
	Description string
	Questions   []QuizQuestion
	CreatedAt   time.Time
}

// QuizQuestion is a single question with its answer options.
type QuizQuestion struct {
	ID      int64
	Text    string
	Options []string
}
