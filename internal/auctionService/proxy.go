package auction

import (
	"context"
	"errors"
	"sort"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/utils"
)

// proxyCandidate is an eligible ceiling-bidder considered for escalation.
type proxyCandidate struct {
	bidderID string
	ceiling  int64
	// lastManualBid is the tie-break key: the timestamp of the bidder's most
	// recent non-proxy bid. Resolver-committed bids are excluded so repeated
	// resolutions stay deterministic.
	lastManualBid time.Time
}

// resolveProxy decides whether one ceiling-bidder retakes the lead after an
// accepted bid from triggerBidder, committing at most a single counter-bid.
// It never raises to the triggering caller: any inability to escalate is a
// silent no-op. Returns whether the escalation extended the deadline.
// The caller must hold the lot's lock.
func (s *AuctionService) resolveProxy(ctx context.Context, lot *model.Lot, triggerBidder string) bool {
	winner, target, ok := s.selectProxyWinner(lot, triggerBidder)
	if !ok {
		return false
	}

	// The winner overtakes their own prior position, so the commit path is
	// entered directly without the acceptBid-side checks.
	_, extended, err := s.commitBid(ctx, lot, winner, target, true, s.clock.Now())
	if err != nil {
		utils.Error("proxy escalation failed", map[string]any{
			"lot_id":    lot.LotID,
			"bidder_id": winner,
			"target":    target,
			"error":     err.Error(),
		})
		return false
	}
	return extended
}

// selectProxyWinner computes the single eligible ceiling-bidder who should
// retake the lead and the price they pay: one increment above the next-best
// competing ceiling or the current price, never beyond their own ceiling.
// ok is false when no escalation applies. Re-running against unchanged lot
// state always yields the same winner, and a winner who already leads is a
// no-op, so resolution is idempotent.
func (s *AuctionService) selectProxyWinner(lot *model.Lot, triggerBidder string) (winner string, target int64, ok bool) {
	bids, err := s.repo.GetBidsByLot(lot.LotID)
	if err != nil {
		if !errors.Is(err, auctionerrors.ErrNoBids) {
			utils.Error("proxy resolution could not read ledger", map[string]any{
				"lot_id": lot.LotID,
				"error":  err.Error(),
			})
		}
		return "", 0, false
	}

	// Bidders qualify only with at least one prior bid on this lot; proxies
	// never auto-enter an auction they never joined.
	lastManual := make(map[string]time.Time)
	participated := make(map[string]bool)
	for _, b := range bids {
		if b.BidderID == triggerBidder || b.BidderID == lot.SellerID {
			continue
		}
		participated[b.BidderID] = true
		if !b.IsProxy && b.CreatedAt.After(lastManual[b.BidderID]) {
			lastManual[b.BidderID] = b.CreatedAt
		}
	}
	if len(participated) == 0 {
		return "", 0, false
	}

	bidderIDs := make([]string, 0, len(participated))
	for id := range participated {
		bidderIDs = append(bidderIDs, id)
	}
	settings, err := s.repo.GetProxySettings(bidderIDs)
	if err != nil {
		utils.Error("proxy resolution could not read settings", map[string]any{
			"lot_id": lot.LotID,
			"error":  err.Error(),
		})
		return "", 0, false
	}

	current := lot.CurrentPrice
	var eligible []proxyCandidate
	for _, id := range bidderIDs {
		setting, found := settings[id]
		if !found || !setting.AutoBidEnabled || setting.MaxAmount <= current {
			continue
		}
		eligible = append(eligible, proxyCandidate{
			bidderID:      id,
			ceiling:       setting.MaxAmount,
			lastManualBid: lastManual[id],
		})
	}
	if len(eligible) == 0 {
		return "", 0, false
	}

	highestMax := eligible[0].ceiling
	for _, c := range eligible[1:] {
		if c.ceiling > highestMax {
			highestMax = c.ceiling
		}
	}
	if highestMax <= current {
		return "", 0, false
	}

	// Earlier commitment to a ceiling outranks a later bidder who merely
	// matches it.
	var tieGroup []proxyCandidate
	for _, c := range eligible {
		if c.ceiling == highestMax {
			tieGroup = append(tieGroup, c)
		}
	}
	sort.Slice(tieGroup, func(i, j int) bool {
		if !tieGroup[i].lastManualBid.Equal(tieGroup[j].lastManualBid) {
			return tieGroup[i].lastManualBid.Before(tieGroup[j].lastManualBid)
		}
		return tieGroup[i].bidderID < tieGroup[j].bidderID
	})
	winner = tieGroup[0].bidderID

	if winner == lot.LeaderID {
		// A prior resolution already settled this winner's position.
		return "", 0, false
	}

	secondPrice := current
	for _, c := range eligible {
		if c.ceiling != highestMax && c.ceiling > secondPrice {
			secondPrice = c.ceiling
		}
	}

	inc := s.policy.Increment(current)
	target = current + inc
	if secondPrice+inc > target {
		target = secondPrice + inc
	}
	if target > highestMax {
		target = highestMax
	}
	if target <= current {
		return "", 0, false
	}
	return winner, target, true
}
