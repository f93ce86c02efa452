package models

import "time"

// LotStatus is the lifecycle state of a lot. Transitions only move forward:
// DRAFT -> PENDING -> ACTIVE -> {SOLD, EXPIRED, CANCELLED}.
type LotStatus string

const (
	LotStatusDraft     LotStatus = "draft"
	LotStatusPending   LotStatus = "pending"
	LotStatusActive    LotStatus = "active"
	LotStatusSold      LotStatus = "sold"
	LotStatusCancelled LotStatus = "cancelled"
	LotStatusExpired   LotStatus = "expired"
)

// Terminal reports whether no further transitions are allowed from s.
func (s LotStatus) Terminal() bool {
	return s == LotStatusSold || s == LotStatusCancelled || s == LotStatusExpired
}

// Lot represents an auction lot. Price, status, deadline and leader are owned
// by the engine while the lot is ACTIVE; Version is the optimistic lock token
// bumped by the repository on every committed update.
type Lot struct {
	LotID         string    `json:"lot_id"`
	SellerID      string    `json:"seller_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartingPrice int64     `json:"starting_price"`
	CurrentPrice  int64     `json:"current_price"`
	LeaderID      string    `json:"leader_id,omitempty"`
	Status        LotStatus `json:"status"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Extensions    int       `json:"extensions"`
	Version       int64     `json:"version"`
}

// Bid represents a committed bid on a lot. CreatedAt is the ordering key used
// for tie-breaks; IsProxy marks bids placed by the proxy resolver on a
// ceiling-bidder's behalf.
type Bid struct {
	BidID     string    `json:"bid_id"`
	LotID     string    `json:"lot_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	IsProxy   bool      `json:"is_proxy"`
	CreatedAt time.Time `json:"created_at"`
}

// ProxySetting is a bidder's auto-bid configuration. Written by the
// account-settings collaborator; the engine only reads snapshots of it.
type ProxySetting struct {
	BidderID       string `json:"bidder_id"`
	AutoBidEnabled bool   `json:"auto_bid_enabled"`
	MaxAmount      int64  `json:"max_amount"`
}

// BidResult is the synchronous outcome of a placed bid. NewPrice and
// NewLeader reflect the state after any proxy escalation triggered by the
// bid, so a caller immediately sees being overtaken.
type BidResult struct {
	Bid       Bid    `json:"bid"`
	NewPrice  int64  `json:"new_price"`
	NewLeader string `json:"new_leader"`
	Extended  bool   `json:"extended"`
}

// SettleOutcome is the settlement verdict for a lot past its deadline.
type SettleOutcome struct {
	Sold     bool   `json:"sold"`
	WinnerID string `json:"winner_id,omitempty"`
	Amount   int64  `json:"amount,omitempty"`
}
