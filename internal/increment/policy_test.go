package increment

import (
	"errors"
	"testing"

	"auction-engine/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

// Test Increment against the full tier table
func TestPolicy_Increment(t *testing.T) {
	t.Parallel()

	policy := NewDefaultPolicy()

	tests := []struct {
		name  string
		price int64
		want  int64
	}{
		{name: "zero_price", price: 0, want: 1},
		{name: "below_first_threshold", price: 99, want: 1},
		{name: "at_threshold_100", price: 100, want: 2},
		{name: "between_100_and_500", price: 499, want: 2},
		{name: "at_threshold_500", price: 500, want: 5},
		{name: "at_threshold_1000", price: 1000, want: 10},
		{name: "between_1000_and_5000", price: 4999, want: 10},
		{name: "at_threshold_5000", price: 5000, want: 20},
		{name: "at_threshold_10000", price: 10000, want: 50},
		{name: "at_threshold_50000", price: 50000, want: 100},
		{name: "at_threshold_100000", price: 100000, want: 200},
		{name: "at_threshold_500000", price: 500000, want: 500},
		{name: "at_threshold_1000000", price: 1000000, want: 1000},
		{name: "at_threshold_5000000", price: 5000000, want: 2000},
		{name: "above_top_threshold", price: 99000000, want: 2000},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, policy.Increment(tc.price))
		})
	}
}

// Increment must be a non-decreasing step function and MinNextBid strictly above the price
func TestPolicy_Monotonic(t *testing.T) {
	t.Parallel()

	policy := NewDefaultPolicy()

	var prev int64
	for price := int64(0); price <= 6000000; price += 997 {
		step := policy.Increment(price)
		require.GreaterOrEqual(t, step, prev, "step decreased at price %d", price)
		require.Greater(t, policy.MinNextBid(price), price)
		prev = step
	}
}

// Test Validate
func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	policy := NewDefaultPolicy()

	tests := []struct {
		name     string
		price    int64
		proposed int64
		wantErr  error
	}{
		{name: "too_low_at_100", price: 100, proposed: 101, wantErr: auctionerrors.ErrBidTooLow},
		{name: "ok_at_100", price: 100, proposed: 102, wantErr: nil},
		{name: "too_low_at_1000", price: 1000, proposed: 1009, wantErr: auctionerrors.ErrBidTooLow},
		{name: "ok_at_1000", price: 1000, proposed: 1010, wantErr: nil},
		{name: "equal_to_price", price: 1000, proposed: 1000, wantErr: auctionerrors.ErrBidTooLow},
		{name: "below_price", price: 1000, proposed: 900, wantErr: auctionerrors.ErrBidTooLow},
		{name: "well_above_minimum", price: 1000, proposed: 5000, wantErr: nil},
		{name: "first_bid_over_zero", price: 0, proposed: 1, wantErr: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := policy.Validate(tc.price, tc.proposed)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Test NewPolicy table validation
func TestNewPolicy_InvalidTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tiers []Tier
	}{
		{name: "empty_table", tiers: nil},
		{name: "missing_zero_threshold", tiers: []Tier{{Threshold: 10, Step: 1}}},
		{name: "zero_step", tiers: []Tier{{Threshold: 0, Step: 0}}},
		{name: "negative_step", tiers: []Tier{{Threshold: 0, Step: 1}, {Threshold: 100, Step: -5}}},
		{name: "duplicate_threshold", tiers: []Tier{{Threshold: 0, Step: 1}, {Threshold: 0, Step: 2}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewPolicy(tc.tiers)
			require.Error(t, err)
		})
	}
}

// Custom tables are accepted in any input order
func TestNewPolicy_UnsortedInput(t *testing.T) {
	t.Parallel()

	policy, err := NewPolicy([]Tier{
		{Threshold: 100, Step: 5},
		{Threshold: 0, Step: 1},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), policy.Increment(50))
	require.Equal(t, int64(5), policy.Increment(100))
}
