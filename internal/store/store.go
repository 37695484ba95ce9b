package store

import (
	"context"
	"fmt"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// Store bundles every tracker collection over a single snapshot store.
type Store struct {
	Transactions *Collection[entity.Transaction]
	Bets         *Collection[entity.Bet]
	Debts        *Collection[entity.Debt]
	GameAnalyses *Collection[entity.GameAnalysis]
	Ideas        *Collection[entity.Idea]
	Events       *Collection[entity.CalendarEvent]
	Products     *Collection[entity.Product]
	Sales        *Collection[entity.Sale]
	SalesScripts *Collection[entity.SalesScript]
}

// New creates a store with empty collections bound to their slots.
func New(snapshots adapter.SnapshotStore) *Store {
	return &Store{
		Transactions: NewCollection[entity.Transaction](adapter.SlotTransactions, snapshots),
		Bets:         NewCollection[entity.Bet](adapter.SlotBets, snapshots),
		Debts:        NewCollection[entity.Debt](adapter.SlotDebts, snapshots),
		GameAnalyses: NewCollection[entity.GameAnalysis](adapter.SlotGameAnalyses, snapshots),
		Ideas:        NewCollection[entity.Idea](adapter.SlotIdeas, snapshots),
		Events:       NewCollection[entity.CalendarEvent](adapter.SlotEvents, snapshots),
		Products:     NewCollection[entity.Product](adapter.SlotProducts, snapshots),
		Sales:        NewCollection[entity.Sale](adapter.SlotSales, snapshots),
		SalesScripts: NewCollection[entity.SalesScript](adapter.SlotSalesScripts, snapshots),
	}
}

// LoadAll hydrates every collection from its slot. It runs once at startup
// before the server accepts requests.
func (s *Store) LoadAll(ctx context.Context) error {
	loaders := []struct {
		slot string
		load func(context.Context) error
	}{
		{adapter.SlotTransactions, s.Transactions.Load},
		{adapter.SlotBets, s.Bets.Load},
		{adapter.SlotDebts, s.Debts.Load},
		{adapter.SlotGameAnalyses, s.GameAnalyses.Load},
		{adapter.SlotIdeas, s.Ideas.Load},
		{adapter.SlotEvents, s.Events.Load},
		{adapter.SlotProducts, s.Products.Load},
		{adapter.SlotSales, s.Sales.Load},
		{adapter.SlotSalesScripts, s.SalesScripts.Load},
	}
	for _, l := range loaders {
		if err := l.load(ctx); err != nil {
			return fmt.Errorf("failed to load slot %s: %w", l.slot, err)
		}
	}
	return nil
}
