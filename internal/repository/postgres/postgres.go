// Package postgres provides the PostgreSQL-backed AuctionDB. Bid appends and
// lot updates share one transaction with a row lock on the lot, and every
// lot write checks the optimistic version token.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS lots (
	id             TEXT PRIMARY KEY,
	seller_id      TEXT NOT NULL,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	starting_price BIGINT NOT NULL,
	current_price  BIGINT NOT NULL,
	leader_id      TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL,
	start_time     TIMESTAMPTZ,
	end_time       TIMESTAMPTZ,
	extensions     INT NOT NULL DEFAULT 0,
	version        BIGINT NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS bids (
	id         TEXT PRIMARY KEY,
	lot_id     TEXT NOT NULL REFERENCES lots(id),
	bidder_id  TEXT NOT NULL,
	amount     BIGINT NOT NULL,
	is_proxy   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS bids_lot_amount_idx ON bids (lot_id, amount DESC, created_at);

CREATE TABLE IF NOT EXISTS proxy_settings (
	bidder_id        TEXT PRIMARY KEY,
	auto_bid_enabled BOOLEAN NOT NULL DEFAULT FALSE,
	max_amount       BIGINT NOT NULL DEFAULT 0
);
`

// Repo implements repository.AuctionDB on a pgx connection pool.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo wraps an existing pool.
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Connect dials the database and bootstraps the schema.
func Connect(ctx context.Context, databaseURL string) (*Repo, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	repo := &Repo{pool: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}

// EnsureSchema creates the tables when absent.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Close releases the pool.
func (r *Repo) Close() {
	r.pool.Close()
}

const lotColumns = `id, seller_id, title, description, starting_price, current_price, leader_id, status, start_time, end_time, extensions, version`

func scanLot(row pgx.Row) (model.Lot, error) {
	var lot model.Lot
	err := row.Scan(&lot.LotID, &lot.SellerID, &lot.Title, &lot.Description,
		&lot.StartingPrice, &lot.CurrentPrice, &lot.LeaderID, &lot.Status,
		&lot.StartTime, &lot.EndTime, &lot.Extensions, &lot.Version)
	return lot, err
}

// CreateLot inserts a new lot at version 1.
func (r *Repo) CreateLot(lot model.Lot) error {
	const stmt = `
INSERT INTO lots (id, seller_id, title, description, starting_price, current_price, leader_id, status, start_time, end_time, extensions, version)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)`

	_, err := r.pool.Exec(context.Background(), stmt,
		lot.LotID, lot.SellerID, lot.Title, lot.Description,
		lot.StartingPrice, lot.CurrentPrice, lot.LeaderID, lot.Status,
		lot.StartTime, lot.EndTime, lot.Extensions,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create lot %s: lot already exists", lot.LotID)
		}
		return fmt.Errorf("create lot %s: %w", lot.LotID, err)
	}
	return nil
}

// GetLot reads a lot snapshot.
func (r *Repo) GetLot(lotID string) (model.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	lot, err := scanLot(r.pool.QueryRow(context.Background(), query, lotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
		}
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, err)
	}
	return lot, nil
}

// UpdateLot writes the lot if the version token matches, bumping it.
func (r *Repo) UpdateLot(lot model.Lot) error {
	return r.withTx(context.Background(), func(ctx context.Context, tx pgx.Tx) error {
		return updateLotTx(ctx, tx, lot)
	})
}

func updateLotTx(ctx context.Context, tx pgx.Tx, lot model.Lot) error {
	const stmt = `
UPDATE lots
SET seller_id = $2, title = $3, description = $4, starting_price = $5,
    current_price = $6, leader_id = $7, status = $8, start_time = $9,
    end_time = $10, extensions = $11, version = version + 1
WHERE id = $1 AND version = $12`

	tag, err := tx.Exec(ctx, stmt,
		lot.LotID, lot.SellerID, lot.Title, lot.Description, lot.StartingPrice,
		lot.CurrentPrice, lot.LeaderID, lot.Status, lot.StartTime, lot.EndTime,
		lot.Extensions, lot.Version,
	)
	if err != nil {
		return fmt.Errorf("update lot %s: %w", lot.LotID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the lot is gone or someone committed first.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM lots WHERE id = $1)`, lot.LotID).Scan(&exists); err != nil {
			return fmt.Errorf("update lot %s: %w", lot.LotID, err)
		}
		if !exists {
			return fmt.Errorf("update lot %s: %w", lot.LotID, auctionerrors.ErrLotNotFound)
		}
		return fmt.Errorf("update lot %s: %w", lot.LotID, auctionerrors.ErrVersionConflict)
	}
	return nil
}

// RecordBidForLot appends the bid and applies the lot update in one
// transaction, locking the lot row for the duration.
func (r *Repo) RecordBidForLot(bid model.Bid, lot model.Lot) error {
	if bid.LotID != lot.LotID {
		return fmt.Errorf("record bid %s: %w: bid lot %s does not match lot %s",
			bid.BidID, auctionerrors.ErrInvariantViolation, bid.LotID, lot.LotID)
	}
	if bid.Amount != lot.CurrentPrice {
		return fmt.Errorf("record bid %s: %w: bid amount %d does not match lot price %d",
			bid.BidID, auctionerrors.ErrInvariantViolation, bid.Amount, lot.CurrentPrice)
	}

	return r.withTx(context.Background(), func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT 1 FROM lots WHERE id = $1 FOR UPDATE`, lot.LotID); err != nil {
			return fmt.Errorf("lock lot %s: %w", lot.LotID, err)
		}
		if err := updateLotTx(ctx, tx, lot); err != nil {
			return err
		}
		const stmt = `
INSERT INTO bids (id, lot_id, bidder_id, amount, is_proxy, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := tx.Exec(ctx, stmt, bid.BidID, bid.LotID, bid.BidderID, bid.Amount, bid.IsProxy, bid.CreatedAt); err != nil {
			return fmt.Errorf("record bid %s for lot %s: %w", bid.BidID, bid.LotID, err)
		}
		return nil
	})
}

// GetBidsByLot returns all bids for a lot in commit order.
func (r *Repo) GetBidsByLot(lotID string) ([]model.Bid, error) {
	const query = `
SELECT id, lot_id, bidder_id, amount, is_proxy, created_at
FROM bids WHERE lot_id = $1
ORDER BY created_at, id`

	rows, err := r.pool.Query(context.Background(), query, lotID)
	if err != nil {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.BidID, &b.LotID, &b.BidderID, &b.Amount, &b.IsProxy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("get bids for lot %s: %w", lotID, err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a lot, earliest on ties.
func (r *Repo) GetWinningBid(lotID string) (model.Bid, error) {
	const query = `
SELECT id, lot_id, bidder_id, amount, is_proxy, created_at
FROM bids WHERE lot_id = $1
ORDER BY amount DESC, created_at ASC
LIMIT 1`

	var b model.Bid
	err := r.pool.QueryRow(context.Background(), query, lotID).
		Scan(&b.BidID, &b.LotID, &b.BidderID, &b.Amount, &b.IsProxy, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("get winning bid for lot %s: %w", lotID, auctionerrors.ErrNoBids)
		}
		return model.Bid{}, fmt.Errorf("get winning bid for lot %s: %w", lotID, err)
	}
	return b, nil
}

// GetProxySettings returns a consistent snapshot of the given bidders'
// auto-bid settings.
func (r *Repo) GetProxySettings(bidderIDs []string) (map[string]model.ProxySetting, error) {
	const query = `
SELECT bidder_id, auto_bid_enabled, max_amount
FROM proxy_settings WHERE bidder_id = ANY($1)`

	rows, err := r.pool.Query(context.Background(), query, bidderIDs)
	if err != nil {
		return nil, fmt.Errorf("get proxy settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]model.ProxySetting, len(bidderIDs))
	for rows.Next() {
		var s model.ProxySetting
		if err := rows.Scan(&s.BidderID, &s.AutoBidEnabled, &s.MaxAmount); err != nil {
			return nil, fmt.Errorf("get proxy settings: %w", err)
		}
		settings[s.BidderID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get proxy settings: %w", err)
	}
	return settings, nil
}

// SetProxySetting upserts a bidder's auto-bid configuration.
func (r *Repo) SetProxySetting(setting model.ProxySetting) error {
	const stmt = `
INSERT INTO proxy_settings (bidder_id, auto_bid_enabled, max_amount)
VALUES ($1, $2, $3)
ON CONFLICT (bidder_id) DO UPDATE SET auto_bid_enabled = $2, max_amount = $3`

	if _, err := r.pool.Exec(context.Background(), stmt, setting.BidderID, setting.AutoBidEnabled, setting.MaxAmount); err != nil {
		return fmt.Errorf("set proxy setting for bidder %s: %w", setting.BidderID, err)
	}
	return nil
}

func (r *Repo) withTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(ctx, tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
