package ledger

import (
	"context"
	"time"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/infra"
	"coffeebot/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ensureOrdersSQL = `
CREATE TABLE IF NOT EXISTS coffee_orders (
	day_key      text        NOT NULL,
	id           text        NOT NULL,
	requester_id text        NOT NULL,
	display_name text        NOT NULL DEFAULT '',
	slot         text        NOT NULL,
	coffee_type  text        NOT NULL,
	size         text        NOT NULL,
	milk         text        NOT NULL DEFAULT 'None',
	sugar        text        NOT NULL DEFAULT '0',
	notes        text        NOT NULL DEFAULT '',
	channel      text        NOT NULL DEFAULT '',
	created_at   timestamptz NOT NULL,
	PRIMARY KEY (day_key, id)
);
CREATE INDEX IF NOT EXISTS coffee_orders_day_slot_idx
	ON coffee_orders (day_key, slot);
`

func ConnectPostgres(ctx context.Context, cfg config.LedgerConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to parse postgres DSN", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to create postgres pool", err, infra.KindUnavailable)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, infra.WrapRepoErr("failed to ping postgres", err, infra.KindUnavailable)
	}

	return pool, pool.Close, nil
}

// PostgresStore keeps the ledger in a single coffee_orders table. Listing
// streams rows through pgx without buffering, so counting a slot is one
// index-only scan exhausted row by row.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Ensure(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, ensureOrdersSQL); err != nil {
		return infra.WrapRepoErr("failed to ensure coffee_orders table", err)
	}
	return nil
}

func (s *PostgresStore) ListBySlot(ctx context.Context, dayKey string, slot order.Slot) (Iterator, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, day_key, requester_id, display_name, slot,
		       coffee_type, size, milk, sugar, notes, channel, created_at
		FROM coffee_orders
		WHERE day_key = $1 AND slot = $2
		ORDER BY id`,
		dayKey, slot.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query coffee_orders", err, infra.KindUnavailable)
	}
	return &pgxIterator{rows: rows}, nil
}

func (s *PostgresStore) Create(ctx context.Context, rec *order.Record) error {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO coffee_orders
			(day_key, id, requester_id, display_name, slot,
			 coffee_type, size, milk, sugar, notes, channel, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (day_key, id) DO NOTHING`,
		rec.DayKey(), rec.ID(), rec.Requester().ID(), rec.Requester().DisplayName(),
		rec.Slot().String(), rec.Item().CoffeeType(), rec.Item().Size(),
		rec.Item().Milk(), rec.Item().Sugar(), rec.Item().Notes(),
		rec.Channel(), rec.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert order record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order record already exists", nil, infra.KindDuplicateKey)
	}
	return nil
}

type pgxIterator struct {
	rows    pgx.Rows
	current *order.Record
	err     error
}

func (it *pgxIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.rows.Next() {
		if err := it.rows.Err(); err != nil {
			it.err = infra.WrapRepoErr("failed to stream coffee_orders", err, infra.KindUnavailable)
		}
		return false
	}

	var (
		id, dayKey, requesterID, displayName, slot string
		coffeeType, size, milk, sugar, notes       string
		channel                                    string
		createdAt                                  time.Time
	)
	if err := it.rows.Scan(
		&id, &dayKey, &requesterID, &displayName, &slot,
		&coffeeType, &size, &milk, &sugar, &notes, &channel, &createdAt,
	); err != nil {
		it.err = infra.WrapRepoErr("failed to scan order record", err)
		return false
	}

	it.current = order.ReconstructRecord(
		id, dayKey, order.Slot(slot),
		order.NewRequester(requesterID, displayName),
		order.NewItem(coffeeType, size, milk, sugar, notes),
		createdAt, channel,
	)
	return true
}

func (it *pgxIterator) Record() *order.Record { return it.current }
func (it *pgxIterator) Err() error            { return it.err }

func (it *pgxIterator) Close() error {
	it.rows.Close()
	return nil
}
