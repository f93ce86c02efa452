package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/utils"
)

// allowedTransitions encodes the forward-only lifecycle machine.
var allowedTransitions = map[model.LotStatus][]model.LotStatus{
	model.LotStatusDraft:   {model.LotStatusPending, model.LotStatusCancelled},
	model.LotStatusPending: {model.LotStatusActive, model.LotStatusCancelled},
	model.LotStatusActive:  {model.LotStatusSold, model.LotStatusExpired, model.LotStatusCancelled},
}

func canTransition(from, to model.LotStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateLot registers a new draft lot owned by the seller.
func (s *AuctionService) CreateLot(sellerID, title, description string, startingPrice int64) (model.Lot, error) {
	if sellerID == "" || title == "" {
		return model.Lot{}, fmt.Errorf("service: %w - missing sellerID or title", auctionerrors.ErrInvalidBid)
	}
	if startingPrice < 0 {
		return model.Lot{}, fmt.Errorf("service: %w - negative starting price", auctionerrors.ErrInvalidBid)
	}

	lot := model.Lot{
		LotID:         utils.GenerateID(),
		SellerID:      sellerID,
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Status:        model.LotStatusDraft,
	}
	if err := s.repo.CreateLot(lot); err != nil {
		return model.Lot{}, fmt.Errorf("service: failed to create lot for seller %s: %w", sellerID, err)
	}
	lot.Version = 1
	return lot, nil
}

// SubmitLot moves a draft lot to pending, awaiting external approval.
func (s *AuctionService) SubmitLot(lotID string) (model.Lot, error) {
	return s.transition(lotID, model.LotStatusPending, nil)
}

// ActivateLot opens a pending lot for bidding. Start and end times are
// assigned when absent: start is now, end is start plus the configured
// default duration.
func (s *AuctionService) ActivateLot(lotID string, startTime, endTime time.Time) (model.Lot, error) {
	return s.transition(lotID, model.LotStatusActive, func(lot *model.Lot, now time.Time) error {
		start := startTime
		if start.IsZero() {
			if lot.StartTime.IsZero() {
				start = now
			} else {
				start = lot.StartTime
			}
		}
		end := endTime
		if end.IsZero() {
			if lot.EndTime.IsZero() {
				end = start.Add(s.defaultDuration)
			} else {
				end = lot.EndTime
			}
		}
		if !end.After(start) {
			return fmt.Errorf("%w - end time must be after start time", auctionerrors.ErrInvalidBid)
		}
		lot.StartTime = start.UTC()
		lot.EndTime = end.UTC()
		return nil
	})
}

// CancelLot cancels a lot that has not reached a terminal state.
func (s *AuctionService) CancelLot(lotID string) (model.Lot, error) {
	return s.transition(lotID, model.LotStatusCancelled, nil)
}

func (s *AuctionService) transition(lotID string, to model.LotStatus, mutate func(*model.Lot, time.Time) error) (model.Lot, error) {
	if lotID == "" {
		return model.Lot{}, fmt.Errorf("service: %w - empty lot ID", auctionerrors.ErrInvalidBid)
	}

	var out model.Lot
	err := s.withLotLock(lotID, func() error {
		lot, err := s.repo.GetLot(lotID)
		if err != nil {
			return fmt.Errorf("service: %w", err)
		}
		if !canTransition(lot.Status, to) {
			return fmt.Errorf("service: lot %s: %w: %s -> %s", lotID, auctionerrors.ErrInvalidTransition, lot.Status, to)
		}
		if mutate != nil {
			if err := mutate(&lot, s.clock.Now()); err != nil {
				return fmt.Errorf("service: lot %s: %w", lotID, err)
			}
		}
		lot.Status = to
		if err := s.repo.UpdateLot(lot); err != nil {
			return fmt.Errorf("service: failed to update lot %s: %w", lotID, err)
		}
		lot.Version++
		out = lot
		return nil
	})
	if err != nil {
		return model.Lot{}, err
	}
	return out, nil
}

// HasEnded reports whether an active lot's deadline has passed. Pure; the
// scheduling of settlement is an external collaborator's concern.
func HasEnded(lot model.Lot, now time.Time) bool {
	return lot.Status == model.LotStatusActive && !lot.EndTime.IsZero() && !now.Before(lot.EndTime)
}

// Settle determines the terminal outcome of an ended lot from its ledger.
// Pure: the caller persists the resulting transition.
func Settle(lot model.Lot, bids []model.Bid) model.SettleOutcome {
	var winning *model.Bid
	for i := range bids {
		b := &bids[i]
		if winning == nil || b.Amount > winning.Amount ||
			(b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	if winning == nil {
		return model.SettleOutcome{Sold: false}
	}
	return model.SettleOutcome{Sold: true, WinnerID: winning.BidderID, Amount: winning.Amount}
}

// FinalizeLot is the external scheduler's entry point: once the deadline has
// passed it settles the lot, persists the terminal status and emits
// AuctionEnded.
func (s *AuctionService) FinalizeLot(ctx context.Context, lotID string) (model.Lot, model.SettleOutcome, error) {
	if lotID == "" {
		return model.Lot{}, model.SettleOutcome{}, fmt.Errorf("service: %w - empty lot ID", auctionerrors.ErrInvalidBid)
	}

	var (
		out     model.Lot
		outcome model.SettleOutcome
	)
	err := s.withLotLock(lotID, func() error {
		lot, err := s.repo.GetLot(lotID)
		if err != nil {
			return fmt.Errorf("service: %w", err)
		}
		if lot.Status != model.LotStatusActive {
			return fmt.Errorf("service: lot %s has status %s: %w", lotID, lot.Status, auctionerrors.ErrLotNotActive)
		}
		now := s.clock.Now()
		if !HasEnded(lot, now) {
			return fmt.Errorf("service: lot %s: %w: auction still running until %s",
				lotID, auctionerrors.ErrInvalidTransition, lot.EndTime.Format(time.RFC3339))
		}

		bids, err := s.repo.GetBidsByLot(lotID)
		if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
			return fmt.Errorf("service: failed to read ledger for lot %s: %w", lotID, err)
		}

		result := Settle(lot, bids)
		if result.Sold && result.Amount != lot.CurrentPrice {
			return fmt.Errorf("service: lot %s: %w: ledger top %d does not match current price %d",
				lotID, auctionerrors.ErrInvariantViolation, result.Amount, lot.CurrentPrice)
		}

		if result.Sold {
			lot.Status = model.LotStatusSold
		} else {
			lot.Status = model.LotStatusExpired
		}
		if err := s.repo.UpdateLot(lot); err != nil {
			return fmt.Errorf("service: failed to finalize lot %s: %w", lotID, err)
		}
		lot.Version++

		s.emit(ctx, events.Event{
			Type:     events.TypeAuctionEnded,
			LotID:    lotID,
			Outcome:  string(lot.Status),
			WinnerID: result.WinnerID,
			Amount:   result.Amount,
		})

		out = lot
		outcome = result
		return nil
	})
	if err != nil {
		return model.Lot{}, model.SettleOutcome{}, err
	}
	return out, outcome, nil
}
