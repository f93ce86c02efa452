package auction

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/clock"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/stretchr/testify/require"
)

// N racing bids at the same amount: exactly one wins, nobody is told
// "accepted" at a price below the final current price.
func TestPlaceBid_ConcurrentSameAmount(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	svc := NewAuctionService(repo, events.NewMemorySink(), Options{
		Clock:       clock.NewFixed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		LockTimeout: 10 * time.Second,
	})

	lot := mustActiveLot(t, svc, "seller1", 1000, time.Hour)

	const callers = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted []model.BidResult
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			result, err := svc.PlaceBid(context.Background(), lot.LotID, fmt.Sprintf("user%d", i), 1010)
			if err != nil {
				return
			}
			mu.Lock()
			accepted = append(accepted, result)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	require.Len(t, accepted, 1, "exactly one of the racing bids must be accepted")

	stored, err := svc.GetLot(lot.LotID)
	require.NoError(t, err)
	require.Equal(t, int64(1010), stored.CurrentPrice)
	require.Equal(t, accepted[0].NewLeader, stored.LeaderID)
	require.Equal(t, accepted[0].NewPrice, stored.CurrentPrice)

	bids, err := svc.GetBidsForLot(lot.LotID)
	require.NoError(t, err)
	require.Len(t, bids, 1)
}

// Racing bids at distinct amounts: every accepted bid must have been
// validated against the committed price before it, so accepted amounts are
// strictly increasing in commit order.
func TestPlaceBid_ConcurrentDistinctAmounts(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	svc := NewAuctionService(repo, events.NewMemorySink(), Options{
		Clock:       clock.NewFixed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		LockTimeout: 10 * time.Second,
	})

	lot := mustActiveLot(t, svc, "seller1", 1000, time.Hour)

	const callers = 30
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount := int64(1010 + 10*i)
			_, _ = svc.PlaceBid(context.Background(), lot.LotID, fmt.Sprintf("user%d", i), amount)
		}(i)
	}
	wg.Wait()

	bids, err := svc.GetBidsForLot(lot.LotID)
	require.NoError(t, err)
	require.NotEmpty(t, bids)

	prev := int64(1000)
	for _, b := range bids {
		require.Greater(t, b.Amount, prev, "commit order must observe the post-update price")
		prev = b.Amount
	}

	stored, err := svc.GetLot(lot.LotID)
	require.NoError(t, err)
	require.Equal(t, prev, stored.CurrentPrice, "current price equals the highest committed bid")
}

// Different lots are fully independent under load
func TestPlaceBid_ParallelLots(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	svc := NewAuctionService(repo, events.NewMemorySink(), Options{
		Clock:       clock.NewFixed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		LockTimeout: 10 * time.Second,
	})

	const lots = 10
	lotIDs := make([]string, lots)
	for i := 0; i < lots; i++ {
		lot := mustActiveLot(t, svc, "seller1", 1000, time.Hour)
		lotIDs[i] = lot.LotID
	}

	var wg sync.WaitGroup
	for i := 0; i < lots; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount := int64(1010)
			for n := 0; n < 10; n++ {
				_, err := svc.PlaceBid(context.Background(), lotIDs[i], "bidder", amount)
				require.NoError(t, err)
				amount += 20
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < lots; i++ {
		bids, err := svc.GetBidsForLot(lotIDs[i])
		require.NoError(t, err)
		require.Len(t, bids, 10)
	}
}

// Proxy escalation is settled inside the same critical section: no racing
// human bid can land between acceptance and escalation at a stale price.
func TestPlaceBid_ProxyChainNotInterleaved(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	fixed := clock.NewFixed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := NewAuctionService(repo, events.NewMemorySink(), Options{
		Clock:       fixed,
		LockTimeout: 10 * time.Second,
	})

	lot := mustActiveLot(t, svc, "seller1", 900, time.Hour)

	_, err := svc.PlaceBid(context.Background(), lot.LotID, "proxyY", 905)
	require.NoError(t, err)
	require.NoError(t, svc.SetProxySetting(model.ProxySetting{
		BidderID: "proxyY", AutoBidEnabled: true, MaxAmount: 100000,
	}))

	const callers = 20
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = svc.PlaceBid(context.Background(), lot.LotID, fmt.Sprintf("user%d", i), int64(1000+100*i))
		}(i)
	}
	wg.Wait()

	bids, err := svc.GetBidsForLot(lot.LotID)
	require.NoError(t, err)

	// Every accepted human bid is immediately followed by proxyY's
	// counter-bid; the lead never rests with a human while the ceiling
	// still covers the price.
	for i, b := range bids[1:] {
		if !b.IsProxy {
			require.Less(t, i+2, len(bids), "human bid %s was not countered", b.BidID)
			next := bids[i+2]
			require.True(t, next.IsProxy, "expected proxy counter-bid right after %s", b.BidID)
			require.Equal(t, "proxyY", next.BidderID)
		}
	}

	stored, err := svc.GetLot(lot.LotID)
	require.NoError(t, err)
	require.Equal(t, "proxyY", stored.LeaderID)
}

func mustActiveLot(t *testing.T, svc *AuctionService, sellerID string, price int64, d time.Duration) model.Lot {
	t.Helper()
	lot, err := svc.CreateLot(sellerID, "lot", "", price)
	require.NoError(t, err)
	_, err = svc.SubmitLot(lot.LotID)
	require.NoError(t, err)
	now := svc.clock.Now()
	active, err := svc.ActivateLot(lot.LotID, now, now.Add(d))
	require.NoError(t, err)
	return active
}
