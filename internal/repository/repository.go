package repository

import (
	"fmt"
	"sync"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

// AuctionDB defines the lot and bid storage interface for the engine.
// RecordBidForLot must commit the bid append and the lot update as one
// atomic unit, and every lot write must match the caller's Version token
// or fail with ErrVersionConflict.
type AuctionDB interface {
	CreateLot(lot model.Lot) error
	GetLot(lotID string) (model.Lot, error)
	UpdateLot(lot model.Lot) error
	RecordBidForLot(bid model.Bid, lot model.Lot) error
	GetBidsByLot(lotID string) ([]model.Bid, error)
	GetWinningBid(lotID string) (model.Bid, error)
	GetProxySettings(bidderIDs []string) (map[string]model.ProxySetting, error)
	SetProxySetting(setting model.ProxySetting) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu      sync.RWMutex
	lots    map[string]model.Lot   // key: lotID
	bids    map[string][]model.Bid // key: lotID -> append-only bid history
	proxies map[string]model.ProxySetting
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		lots:    make(map[string]model.Lot),
		bids:    make(map[string][]model.Bid),
		proxies: make(map[string]model.ProxySetting),
	}
}

// CreateLot stores a new lot at version 1
func (r *MemoryRepo) CreateLot(lot model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[lot.LotID]; ok {
		return fmt.Errorf("create lot %s: lot already exists", lot.LotID)
	}
	lot.Version = 1
	r.lots[lot.LotID] = lot
	return nil
}

// GetLot returns a snapshot of the lot
func (r *MemoryRepo) GetLot(lotID string) (model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
	}
	return lot, nil
}

// UpdateLot stores the lot if its version token matches the stored record,
// bumping the version on success
func (r *MemoryRepo) UpdateLot(lot model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storeLotLocked(lot)
}

// RecordBidForLot appends a bid and applies the lot update atomically
func (r *MemoryRepo) RecordBidForLot(bid model.Bid, lot model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bid.LotID != lot.LotID {
		return fmt.Errorf("record bid %s: %w: bid lot %s does not match lot %s",
			bid.BidID, auctionerrors.ErrInvariantViolation, bid.LotID, lot.LotID)
	}
	if bid.Amount != lot.CurrentPrice {
		return fmt.Errorf("record bid %s: %w: bid amount %d does not match lot price %d",
			bid.BidID, auctionerrors.ErrInvariantViolation, bid.Amount, lot.CurrentPrice)
	}
	if err := r.storeLotLocked(lot); err != nil {
		return err
	}
	r.bids[lot.LotID] = append(r.bids[lot.LotID], bid)
	return nil
}

func (r *MemoryRepo) storeLotLocked(lot model.Lot) error {
	stored, ok := r.lots[lot.LotID]
	if !ok {
		return fmt.Errorf("update lot %s: %w", lot.LotID, auctionerrors.ErrLotNotFound)
	}
	if stored.Version != lot.Version {
		return fmt.Errorf("update lot %s: %w: have %d, want %d",
			lot.LotID, auctionerrors.ErrVersionConflict, lot.Version, stored.Version)
	}
	lot.Version++
	r.lots[lot.LotID] = lot
	return nil
}

// GetBidsByLot returns all bids for a lot in commit order
func (r *MemoryRepo) GetBidsByLot(lotID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[lotID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetWinningBid returns the highest bid for a lot, preferring the earliest
// on equal amounts
func (r *MemoryRepo) GetWinningBid(lotID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[lotID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for lot %s: %w", lotID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// GetProxySettings returns a consistent snapshot of the given bidders'
// auto-bid settings; bidders without a setting are absent from the map
func (r *MemoryRepo) GetProxySettings(bidderIDs []string) (map[string]model.ProxySetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings := make(map[string]model.ProxySetting, len(bidderIDs))
	for _, id := range bidderIDs {
		if s, ok := r.proxies[id]; ok {
			settings[id] = s
		}
	}
	return settings, nil
}

// SetProxySetting stores a bidder's auto-bid configuration
func (r *MemoryRepo) SetProxySetting(setting model.ProxySetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if setting.BidderID == "" {
		return fmt.Errorf("set proxy setting: empty bidder id")
	}
	r.proxies[setting.BidderID] = setting
	return nil
}
