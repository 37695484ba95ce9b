// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Snapshot slot keys. Each collection owns exactly one slot.
const (
	SlotTransactions = "transactions"
	SlotBets         = "bets"
	SlotDebts        = "debts"
	SlotGameAnalyses = "gameAnalyses"
	SlotIdeas        = "ideas"
	SlotEvents       = "events"
	SlotProducts     = "products"
	SlotSales        = "sales"
	SlotSalesScripts = "salesScripts"
)

// SnapshotStore persists whole collections as JSON blobs keyed by slot name.
type SnapshotStore interface {
	// Load reads a slot. A missing slot returns (nil, nil); the caller
	// treats that, and any unparsable payload, as an empty collection.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the slot with the serialized collection.
	Save(ctx context.Context, key string, data []byte) error
}
