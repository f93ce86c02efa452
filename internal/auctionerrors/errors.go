package auctionerrors

import "errors"

// Validation errors, surfaced directly for user messaging
var (
	ErrInvalidBid         = errors.New("invalid bid")
	ErrBidTooLow          = errors.New("bid below minimum increment")
	ErrBidNotAboveCurrent = errors.New("bid not above current price")
	ErrSellerSelfBid      = errors.New("seller cannot bid on own lot")
)

// State errors
var (
	ErrLotNotFound       = errors.New("lot not found")
	ErrLotNotActive      = errors.New("lot is not active")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrInvalidTransition = errors.New("invalid lot status transition")
	ErrNoBids            = errors.New("no bids found for lot")
)

// Concurrency errors, transient and retryable
var (
	ErrLotBusy         = errors.New("lot is busy, retry")
	ErrVersionConflict = errors.New("lot version conflict")
)

// ErrInvariantViolation is fatal for the operation that detects it; the
// operation aborts with no partial effect and the condition is reported,
// never auto-corrected.
var ErrInvariantViolation = errors.New("auction invariant violation")
