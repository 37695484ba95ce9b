// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GameAnalysis represents an oracle-generated pre-match analysis.
// Only Match, Date and Analysis are guaranteed; the remaining fields are
// best-effort extractions and may be empty.
type GameAnalysis struct {
	ID                 uuid.UUID `json:"id"`
	Date               time.Time `json:"date"`
	Match              string    `json:"match"`
	Analysis           string    `json:"analysis"`
	PotentialEntries   string    `json:"potentialEntries,omitempty"`
	Referee            string    `json:"referee,omitempty"`
	CardStats          string    `json:"cardStats,omitempty"`
	CornerScenario     string    `json:"cornerScenario,omitempty"`
	TeamCornerAverages string    `json:"teamCornerAverages,omitempty"`
}

// NewGameAnalysis creates a new GameAnalysis entity with a fresh identifier.
func NewGameAnalysis(match string, date time.Time, analysis string) *GameAnalysis {
	return &GameAnalysis{
		ID:       uuid.New(),
		Date:     date,
		Match:    match,
		Analysis: analysis,
	}
}

// RecordID returns the analysis identifier.
func (g GameAnalysis) RecordID() uuid.UUID { return g.ID }
