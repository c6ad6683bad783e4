package model

import "time"

// DiaryEntry is one day's record in a user's personal progress diary.
// Diary entries are local-only: they never leave the device.
type DiaryEntry struct {
	ID                int64
	Username          string
	Mood              int // 1 (worst) to 5 (best)
	ScreenTimeMinutes int
	Note              string
	CreatedAt         time.Time
}
