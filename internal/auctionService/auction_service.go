package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/antisnipe"
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/events"
	"auction-engine/internal/increment"
	"auction-engine/internal/lotlock"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// busyRetries bounds how often a transient lock/version failure is retried
// before being surfaced to the caller.
const busyRetries = 3

// Options tunes an AuctionService. Zero values select defaults.
type Options struct {
	Clock           clock.Clock
	Policy          *increment.Policy
	Extender        *antisnipe.Extender
	LockTimeout     time.Duration
	DefaultDuration time.Duration // auction length assigned on activation when no end time is given
}

// AuctionService owns the bidding rules for lots: increment validation,
// anti-snipe extension, proxy escalation and the lifecycle state machine.
// All mutation of one lot is serialized through a per-lot lock; different
// lots proceed in parallel.
type AuctionService struct {
	repo            repository.AuctionDB
	sink            events.Sink
	clock           clock.Clock
	policy          *increment.Policy
	snipe           *antisnipe.Extender
	locks           *lotlock.Registry
	defaultDuration time.Duration
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, sink events.Sink, opts Options) *AuctionService {
	if opts.Clock == nil {
		opts.Clock = clock.NewSystem()
	}
	if opts.Policy == nil {
		opts.Policy = increment.NewDefaultPolicy()
	}
	if opts.Extender == nil {
		opts.Extender = antisnipe.NewDefaultExtender()
	}
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = 7 * 24 * time.Hour
	}
	return &AuctionService{
		repo:            repo,
		sink:            sink,
		clock:           opts.Clock,
		policy:          opts.Policy,
		snipe:           opts.Extender,
		locks:           lotlock.NewRegistry(opts.LockTimeout),
		defaultDuration: opts.DefaultDuration,
	}
}

// PlaceBid validates and commits a bid for a lot, runs anti-snipe extension
// and proxy resolution in the same critical section, and returns the
// resulting price and leader. Transient lock or version failures are retried
// a bounded number of times before ErrLotBusy is surfaced.
func (s *AuctionService) PlaceBid(ctx context.Context, lotID, bidderID string, amount int64) (model.BidResult, error) {
	if lotID == "" || bidderID == "" {
		return model.BidResult{}, fmt.Errorf("service: %w - missing lotID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return model.BidResult{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	var result model.BidResult
	err := s.withLotLock(lotID, func() error {
		var err error
		result, err = s.placeBidLocked(ctx, lotID, bidderID, amount)
		return err
	})
	if err != nil {
		return model.BidResult{}, err
	}
	return result, nil
}

// withLotLock runs fn under the lot's exclusive lock, retrying transient
// lock-acquisition and version failures.
func (s *AuctionService) withLotLock(lotID string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < busyRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 25 * time.Millisecond)
		}

		release, err := s.locks.Acquire(lotID)
		if err != nil {
			lastErr = err
			continue
		}

		err = fn()
		release()

		if err != nil && errors.Is(err, auctionerrors.ErrVersionConflict) {
			lastErr = err
			continue
		}
		return err
	}
	return fmt.Errorf("service: lot %s: %w", lotID, errors.Join(auctionerrors.ErrLotBusy, lastErr))
}

func (s *AuctionService) placeBidLocked(ctx context.Context, lotID, bidderID string, amount int64) (model.BidResult, error) {
	lot, err := s.repo.GetLot(lotID)
	if err != nil {
		return model.BidResult{}, fmt.Errorf("service: %w", err)
	}

	now := s.clock.Now()
	if lot.Status != model.LotStatusActive {
		return model.BidResult{}, fmt.Errorf("service: lot %s has status %s: %w", lotID, lot.Status, auctionerrors.ErrLotNotActive)
	}
	if !now.Before(lot.EndTime) {
		return model.BidResult{}, fmt.Errorf("service: lot %s ended at %s: %w", lotID, lot.EndTime.Format(time.RFC3339), auctionerrors.ErrAuctionEnded)
	}
	if bidderID == lot.SellerID {
		return model.BidResult{}, fmt.Errorf("service: %w", auctionerrors.ErrSellerSelfBid)
	}
	if err := s.policy.Validate(lot.CurrentPrice, amount); err != nil {
		return model.BidResult{}, fmt.Errorf("service: %w", err)
	}

	bid, extended, err := s.commitBid(ctx, &lot, bidderID, amount, false, now)
	if err != nil {
		return model.BidResult{}, err
	}

	// Proxy resolution runs before the lock releases so no rival bid can
	// interleave between acceptance and escalation.
	proxyExtended := s.resolveProxy(ctx, &lot, bidderID)

	return model.BidResult{
		Bid:       bid,
		NewPrice:  lot.CurrentPrice,
		NewLeader: lot.LeaderID,
		Extended:  extended || proxyExtended,
	}, nil
}

// commitBid is the single atomic path every accepted bid takes: ledger
// append, price/leader update and anti-snipe extension commit together or
// not at all. The caller must hold the lot's lock.
func (s *AuctionService) commitBid(ctx context.Context, lot *model.Lot, bidderID string, amount int64, isProxy bool, now time.Time) (model.Bid, bool, error) {
	snapshot := *lot

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		LotID:     lot.LotID,
		BidderID:  bidderID,
		Amount:    amount,
		IsProxy:   isProxy,
		CreatedAt: now,
	}

	oldPrice := lot.CurrentPrice
	oldEnd := lot.EndTime
	prevLeader := lot.LeaderID

	lot.CurrentPrice = amount
	lot.LeaderID = bidderID

	extended := false
	if s.snipe.ShouldExtend(lot.EndTime, now, lot.Extensions) {
		lot.EndTime = s.snipe.Extend(lot.EndTime)
		lot.Extensions++
		extended = true
	}

	if err := s.repo.RecordBidForLot(bid, *lot); err != nil {
		*lot = snapshot
		if errors.Is(err, auctionerrors.ErrInvariantViolation) {
			utils.Error("invariant violation while committing bid", map[string]any{
				"lot_id":    lot.LotID,
				"bidder_id": bidderID,
				"amount":    amount,
				"error":     err.Error(),
			})
		}
		return model.Bid{}, false, fmt.Errorf("service: failed to record bid for lot %s by bidder %s: %w", lot.LotID, bidderID, err)
	}
	lot.Version++ // mirror the repository bump so chained commits carry the fresh token

	s.emit(ctx, events.Event{
		Type:     events.TypeNewBid,
		LotID:    lot.LotID,
		BidderID: bidderID,
		Amount:   amount,
		IsProxy:  isProxy,
	})
	s.emit(ctx, events.Event{
		Type:     events.TypePriceChanged,
		LotID:    lot.LotID,
		OldPrice: oldPrice,
		NewPrice: amount,
	})
	if prevLeader != "" && prevLeader != bidderID {
		s.emit(ctx, events.Event{
			Type:             events.TypeOutbid,
			LotID:            lot.LotID,
			PreviousLeaderID: prevLeader,
			NewPrice:         amount,
		})
	}
	if extended {
		s.emit(ctx, events.Event{
			Type:       events.TypeAuctionExtended,
			LotID:      lot.LotID,
			OldEndTime: oldEnd,
			NewEndTime: lot.EndTime,
		})
	}

	return bid, extended, nil
}

// emit publishes an event best-effort; sink failures never fail the bid.
func (s *AuctionService) emit(ctx context.Context, event events.Event) {
	event.EventID = utils.GenerateID()
	event.At = s.clock.Now()
	if err := s.sink.Publish(ctx, event); err != nil {
		utils.Warn("failed to publish auction event", map[string]any{
			"event_id": event.EventID,
			"type":     string(event.Type),
			"lot_id":   event.LotID,
			"error":    err.Error(),
		})
	}
}

// GetLot returns a snapshot of the lot
func (s *AuctionService) GetLot(lotID string) (model.Lot, error) {
	if lotID == "" {
		return model.Lot{}, fmt.Errorf("service: %w - empty lot ID", auctionerrors.ErrInvalidBid)
	}
	lot, err := s.repo.GetLot(lotID)
	if err != nil {
		return model.Lot{}, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}
	return lot, nil
}

// GetBidsForLot returns all bids for a specific lot in commit order
func (s *AuctionService) GetBidsForLot(lotID string) ([]model.Bid, error) {
	if lotID == "" {
		return nil, fmt.Errorf("service: %w - empty lot ID", auctionerrors.ErrInvalidBid)
	}
	bids, err := s.repo.GetBidsByLot(lotID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for lot %s: %w", lotID, err)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a specific lot
func (s *AuctionService) GetWinningBid(lotID string) (model.Bid, error) {
	if lotID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty lot ID", auctionerrors.ErrInvalidBid)
	}
	bid, err := s.repo.GetWinningBid(lotID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get winning bid for lot %s: %w", lotID, err)
	}
	return bid, nil
}

// SetProxySetting stores a bidder's auto-bid ceiling. The engine only reads
// these as snapshots during proxy resolution.
func (s *AuctionService) SetProxySetting(setting model.ProxySetting) error {
	if setting.BidderID == "" {
		return fmt.Errorf("service: %w - empty bidder ID", auctionerrors.ErrInvalidBid)
	}
	if setting.AutoBidEnabled && setting.MaxAmount <= 0 {
		return fmt.Errorf("service: %w - auto-bid requires a positive ceiling", auctionerrors.ErrInvalidBid)
	}
	if err := s.repo.SetProxySetting(setting); err != nil {
		return fmt.Errorf("service: failed to store proxy setting for bidder %s: %w", setting.BidderID, err)
	}
	return nil
}
