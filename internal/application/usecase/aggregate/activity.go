package aggregate

import (
	"sort"

	"github.com/personal-dashboard/backend/internal/domain/entity"
)

const (
	activityPerSource = 3
	activityLimit     = 5
)

// RecentActivity merges the newest transactions and bets into one feed.
// It takes up to three of each, sorts by date descending and keeps the top
// five. Inputs are expected newest first.
func RecentActivity(transactions []entity.Transaction, bets []entity.Bet) []entity.Activity {
	feed := make([]entity.Activity, 0, 2*activityPerSource)

	for i, t := range transactions {
		if i == activityPerSource {
			break
		}
		feed = append(feed, entity.Activity{
			Kind:            entity.ActivityKindTransaction,
			ID:              t.ID,
			Description:     t.Description,
			Date:            t.Date,
			Amount:          t.Amount,
			TransactionType: t.Type,
		})
	}
	for i, b := range bets {
		if i == activityPerSource {
			break
		}
		feed = append(feed, entity.Activity{
			Kind:        entity.ActivityKindBet,
			ID:          b.ID,
			Description: b.Description,
			Date:        b.Date,
			Amount:      b.Stake,
			BetResult:   b.Result,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})
	if len(feed) > activityLimit {
		feed = feed[:activityLimit]
	}
	return feed
}
