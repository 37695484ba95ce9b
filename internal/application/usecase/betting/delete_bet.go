package betting

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// DeleteBetInput represents the input for deleting a bet.
type DeleteBetInput struct {
	ID uuid.UUID
}

// DeleteBetUseCase handles bet deletion logic.
type DeleteBetUseCase struct {
	bets *store.Collection[entity.Bet]
}

// NewDeleteBetUseCase creates a new DeleteBetUseCase instance.
func NewDeleteBetUseCase(bets *store.Collection[entity.Bet]) *DeleteBetUseCase {
	return &DeleteBetUseCase{bets: bets}
}

// Execute removes the bet. An unknown id is a no-op.
func (uc *DeleteBetUseCase) Execute(ctx context.Context, input DeleteBetInput) error {
	return uc.bets.Delete(ctx, input.ID)
}
