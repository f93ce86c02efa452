package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// SubjectPrefix is the root of the NATS subject hierarchy events publish to.
// Full subjects look like "auction.events.new_bid.<lotID>", which lets
// consumers subscribe per event type or per lot with wildcards.
const SubjectPrefix = "auction.events"

// NATSSink publishes events as JSON to a NATS connection.
type NATSSink struct {
	nc *nats.Conn
}

// NewNATSSink wraps an established NATS connection.
func NewNATSSink(nc *nats.Conn) *NATSSink {
	return &NATSSink{nc: nc}
}

// ConnectNATS dials the given NATS URL and returns a sink over it.
func ConnectNATS(url string) (*NATSSink, error) {
	nc, err := nats.Connect(url, nats.Name("auction-engine"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}
	return &NATSSink{nc: nc}, nil
}

func (s *NATSSink) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}

	subject := fmt.Sprintf("%s.%s.%s", SubjectPrefix, event.Type, event.LotID)
	if err := s.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish event %s to %s: %w", event.EventID, subject, err)
	}
	return nil
}

// Close drains and closes the underlying connection.
func (s *NATSSink) Close() error {
	return s.nc.Drain()
}
