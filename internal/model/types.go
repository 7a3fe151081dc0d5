// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Mode         string
	Duration     int
	CustomText   string
	WordListPath string
	Words        int
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
}

// Score is one leaderboard entry. The JSON shape is the persisted format.
type Score struct {
	WPM  int    `json:"wpm"`
	Acc  string `json:"acc"`
	Time string `json:"time"`
}

// SessionRecord captures a finished run for the history table.
type SessionRecord struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Mode      string
	Duration  int
	WPM       int
	Accuracy  int
	Chars     int
	Errors    int
}
