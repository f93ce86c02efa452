package increment

import (
	"fmt"
	"sort"

	"auction-engine/internal/auctionerrors"
)

// Tier maps a price threshold to the bid step that applies from that
// threshold upward (until the next tier's threshold).
type Tier struct {
	Threshold int64
	Step      int64
}

// Policy computes the minimum increment for a price from an ordered tier
// table. It is pure and safe for unsynchronized concurrent use.
type Policy struct {
	tiers []Tier
}

// DefaultTiers is the standard marketplace increment schedule.
var DefaultTiers = []Tier{
	{Threshold: 0, Step: 1},
	{Threshold: 100, Step: 2},
	{Threshold: 500, Step: 5},
	{Threshold: 1000, Step: 10},
	{Threshold: 5000, Step: 20},
	{Threshold: 10000, Step: 50},
	{Threshold: 50000, Step: 100},
	{Threshold: 100000, Step: 200},
	{Threshold: 500000, Step: 500},
	{Threshold: 1000000, Step: 1000},
	{Threshold: 5000000, Step: 2000},
}

// NewPolicy builds a policy from a tier table. The table must start at
// threshold 0, be strictly ascending, and carry positive steps.
func NewPolicy(tiers []Tier) (*Policy, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("increment: empty tier table")
	}
	sorted := append([]Tier(nil), tiers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Threshold < sorted[j].Threshold })

	if sorted[0].Threshold != 0 {
		return nil, fmt.Errorf("increment: first tier threshold must be 0, got %d", sorted[0].Threshold)
	}
	for i, tier := range sorted {
		if tier.Step <= 0 {
			return nil, fmt.Errorf("increment: tier %d has non-positive step %d", i, tier.Step)
		}
		if i > 0 && tier.Threshold == sorted[i-1].Threshold {
			return nil, fmt.Errorf("increment: duplicate threshold %d", tier.Threshold)
		}
	}
	return &Policy{tiers: sorted}, nil
}

// NewDefaultPolicy returns a policy over DefaultTiers.
func NewDefaultPolicy() *Policy {
	p, err := NewPolicy(DefaultTiers)
	if err != nil {
		panic(err) // DefaultTiers is a valid table
	}
	return p
}

// Increment returns the bid step for the given price: the step of the
// largest tier threshold <= price.
func (p *Policy) Increment(price int64) int64 {
	step := p.tiers[0].Step
	for _, tier := range p.tiers {
		if tier.Threshold > price {
			break
		}
		step = tier.Step
	}
	return step
}

// MinNextBid returns the smallest acceptable bid over the given price.
func (p *Policy) MinNextBid(price int64) int64 {
	return price + p.Increment(price)
}

// Validate checks a proposed bid against the current price. It has no side
// effects and returns ErrBidTooLow when proposed is under the minimum next
// bid, or ErrBidNotAboveCurrent as a residual guard when proposed does not
// exceed the current price.
func (p *Policy) Validate(price, proposed int64) error {
	if proposed < p.MinNextBid(price) {
		return fmt.Errorf("%w: minimum next bid is %d", auctionerrors.ErrBidTooLow, p.MinNextBid(price))
	}
	if proposed <= price {
		return fmt.Errorf("%w: current price is %d", auctionerrors.ErrBidNotAboveCurrent, price)
	}
	return nil
}
