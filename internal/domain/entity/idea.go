// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdeaCategory represents the fixed set of idea buckets.
type IdeaCategory string

const (
	IdeaCategoryExtraIncome IdeaCategory = "Renda Extra"
	IdeaCategoryAutomation  IdeaCategory = "Automação"
	IdeaCategoryContent     IdeaCategory = "Conteúdo"
	IdeaCategoryPersonal    IdeaCategory = "Pessoal"
	IdeaCategoryWork        IdeaCategory = "Trabalho"
)

// ValidIdeaCategory reports whether the category belongs to the fixed enum.
func ValidIdeaCategory(c IdeaCategory) bool {
	switch c {
	case IdeaCategoryExtraIncome, IdeaCategoryAutomation, IdeaCategoryContent,
		IdeaCategoryPersonal, IdeaCategoryWork:
		return true
	}
	return false
}

// Idea represents a captured idea. Date is set at creation and never changes.
type Idea struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    IdeaCategory `json:"category"`
	Date        time.Time    `json:"date"`
}

// NewIdea creates a new Idea entity stamped with the current time.
func NewIdea(title, description string, category IdeaCategory) *Idea {
	return &Idea{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Category:    category,
		Date:        time.Now().UTC(),
	}
}

// RecordID returns the idea identifier.
func (i Idea) RecordID() uuid.UUID { return i.ID }
