package events

import (
	"context"
	"sync"
	"time"

	"auction-engine/utils"
)

// Type names a domain event emitted by the engine.
type Type string

const (
	TypeNewBid          Type = "new_bid"
	TypePriceChanged    Type = "price_changed"
	TypeOutbid          Type = "outbid"
	TypeAuctionExtended Type = "auction_extended"
	TypeAuctionEnded    Type = "auction_ended"
)

// Event is the envelope delivered to downstream collaborators (notification,
// channel sync, settlement). Fields not relevant to a given type are zero.
type Event struct {
	EventID          string    `json:"event_id"`
	Type             Type      `json:"type"`
	LotID            string    `json:"lot_id"`
	BidderID         string    `json:"bidder_id,omitempty"`
	Amount           int64     `json:"amount,omitempty"`
	IsProxy          bool      `json:"is_proxy,omitempty"`
	OldPrice         int64     `json:"old_price,omitempty"`
	NewPrice         int64     `json:"new_price,omitempty"`
	PreviousLeaderID string    `json:"previous_leader_id,omitempty"`
	OldEndTime       time.Time `json:"old_end_time,omitempty"`
	NewEndTime       time.Time `json:"new_end_time,omitempty"`
	Outcome          string    `json:"outcome,omitempty"`
	WinnerID         string    `json:"winner_id,omitempty"`
	At               time.Time `json:"at"`
}

// Sink receives engine events. Implementations must be safe for concurrent
// use; publish failures are the sink's to report, the engine treats them as
// best-effort.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// MemorySink records events in order. Intended for tests.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Publish(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything published so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

// ByType returns published events of the given type, in publish order.
func (s *MemorySink) ByType(t Type) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// LogSink writes events to the structured log. Used when no broker is
// configured.
type LogSink struct{}

// NewLogSink creates a log-backed sink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Publish(_ context.Context, event Event) error {
	utils.Info("auction event", map[string]any{
		"event_id": event.EventID,
		"type":     string(event.Type),
		"lot_id":   event.LotID,
		"bidder":   event.BidderID,
		"amount":   event.Amount,
	})
	return nil
}
