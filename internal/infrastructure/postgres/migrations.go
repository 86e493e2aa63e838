package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migration es un paso de esquema versionado. La lista es append-only: nunca
// se edita un paso ya aplicado, se agrega uno nuevo.
type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "users",
		sql: `
			CREATE TABLE IF NOT EXISTS users (
				id            TEXT PRIMARY KEY,
				username      TEXT NOT NULL UNIQUE,
				email         TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				role          TEXT NOT NULL DEFAULT 'user',
				full_name     TEXT NOT NULL DEFAULT '',
				phone         TEXT NOT NULL DEFAULT '',
				is_active     BOOLEAN NOT NULL DEFAULT TRUE,
				created_at    TIMESTAMPTZ NOT NULL,
				updated_at    TIMESTAMPTZ NOT NULL
			)`,
	},
	{
		version: 2,
		name:    "customers",
		sql: `
			CREATE TABLE IF NOT EXISTS customers (
				id               TEXT PRIMARY KEY,
				name             TEXT NOT NULL,
				email            TEXT NOT NULL DEFAULT '',
				phone            TEXT NOT NULL DEFAULT '',
				address          TEXT NOT NULL DEFAULT '',
				company          TEXT NOT NULL DEFAULT '',
				notes            TEXT NOT NULL DEFAULT '',
				username         TEXT UNIQUE,
				password_hash    TEXT,
				status           TEXT NOT NULL DEFAULT 'active',
				assigned_user_id TEXT REFERENCES users(id),
				created_by       TEXT NOT NULL REFERENCES users(id),
				created_at       TIMESTAMPTZ NOT NULL,
				updated_at       TIMESTAMPTZ NOT NULL
			)`,
	},
	{
		version: 3,
		name:    "customer_interactions",
		sql: `
			CREATE TABLE IF NOT EXISTS customer_interactions (
				id               TEXT PRIMARY KEY,
				customer_id      TEXT NOT NULL REFERENCES customers(id),
				user_id          TEXT NOT NULL REFERENCES users(id),
				interaction_type TEXT NOT NULL,
				description      TEXT NOT NULL DEFAULT '',
				interaction_date TIMESTAMPTZ NOT NULL,
				follow_up_date   TIMESTAMPTZ,
				status           TEXT NOT NULL DEFAULT 'completed',
				created_at       TIMESTAMPTZ NOT NULL
			)`,
	},
	{
		version: 4,
		name:    "sessions",
		sql: `
			CREATE TABLE IF NOT EXISTS sessions (
				id         TEXT PRIMARY KEY,
				actor_id   TEXT NOT NULL,
				actor_type TEXT NOT NULL,
				token_hash TEXT NOT NULL UNIQUE,
				expires_at TIMESTAMPTZ NOT NULL,
				created_at TIMESTAMPTZ NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_sessions_actor ON sessions (actor_id, actor_type);
			CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions (expires_at)`,
	},
	{
		version: 5,
		name:    "paint_orders",
		sql: `
			CREATE TABLE IF NOT EXISTS paint_orders (
				id              TEXT PRIMARY KEY,
				customer_id     TEXT NOT NULL REFERENCES customers(id),
				user_id         TEXT NOT NULL REFERENCES users(id),
				paint_brand     TEXT NOT NULL DEFAULT '',
				paint_type      TEXT NOT NULL,
				paint_color     TEXT NOT NULL DEFAULT '',
				quantity        NUMERIC(12,2) NOT NULL,
				unit            TEXT NOT NULL DEFAULT 'kg',
				status          TEXT NOT NULL DEFAULT 'pending_approval',
				approval_status TEXT NOT NULL DEFAULT 'pending',
				approved_by     TEXT REFERENCES users(id),
				approved_at     TIMESTAMPTZ,
				assigned_to     TEXT REFERENCES users(id),
				assigned_at     TIMESTAMPTZ,
				order_date      TIMESTAMPTZ NOT NULL,
				delivery_date   TIMESTAMPTZ,
				payment_type    TEXT NOT NULL DEFAULT '',
				notes           TEXT NOT NULL DEFAULT '',
				admin_notes     TEXT NOT NULL DEFAULT '',
				created_at      TIMESTAMPTZ NOT NULL,
				updated_at      TIMESTAMPTZ NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_paint_orders_customer ON paint_orders (customer_id);
			CREATE INDEX IF NOT EXISTS idx_paint_orders_status ON paint_orders (status, approval_status)`,
	},
	{
		version: 6,
		name:    "service_requests",
		sql: `
			CREATE TABLE IF NOT EXISTS service_requests (
				id               TEXT PRIMARY KEY,
				customer_id      TEXT NOT NULL REFERENCES customers(id),
				user_id          TEXT NOT NULL REFERENCES users(id),
				service_type     TEXT NOT NULL,
				description      TEXT NOT NULL DEFAULT '',
				priority         TEXT NOT NULL DEFAULT 'medium',
				status           TEXT NOT NULL DEFAULT 'pending_approval',
				approval_status  TEXT NOT NULL DEFAULT 'pending',
				approved_by      TEXT REFERENCES users(id),
				approved_at      TIMESTAMPTZ,
				assigned_to      TEXT REFERENCES users(id),
				assigned_at      TIMESTAMPTZ,
				request_date     TIMESTAMPTZ NOT NULL,
				scheduled_date   TIMESTAMPTZ,
				completion_date  TIMESTAMPTZ,
				technician_notes TEXT NOT NULL DEFAULT '',
				admin_notes      TEXT NOT NULL DEFAULT '',
				created_at       TIMESTAMPTZ NOT NULL,
				updated_at       TIMESTAMPTZ NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_service_requests_customer ON service_requests (customer_id);
			CREATE INDEX IF NOT EXISTS idx_service_requests_status ON service_requests (status, approval_status)`,
	},
	{
		version: 7,
		name:    "paint_types",
		sql: `
			CREATE TABLE IF NOT EXISTS paint_types (
				id             TEXT PRIMARY KEY,
				brand          TEXT NOT NULL,
				type           TEXT NOT NULL,
				color          TEXT NOT NULL DEFAULT '',
				unit           TEXT NOT NULL DEFAULT 'litre',
				price          NUMERIC(12,2) NOT NULL DEFAULT 0,
				stock_quantity INTEGER NOT NULL DEFAULT 0,
				description    TEXT NOT NULL DEFAULT '',
				status         TEXT NOT NULL DEFAULT 'active',
				created_by     TEXT NOT NULL REFERENCES users(id),
				created_at     TIMESTAMPTZ NOT NULL,
				updated_at     TIMESTAMPTZ NOT NULL
			)`,
	},
	{
		version: 8,
		name:    "machines",
		sql: `
			CREATE TABLE IF NOT EXISTS machines (
				id              TEXT PRIMARY KEY,
				machine_type    TEXT NOT NULL DEFAULT '',
				machine_name    TEXT NOT NULL,
				brand           TEXT NOT NULL DEFAULT '',
				model           TEXT NOT NULL DEFAULT '',
				category        TEXT NOT NULL DEFAULT '',
				price           NUMERIC(12,2) NOT NULL DEFAULT 0,
				status          TEXT NOT NULL DEFAULT 'available',
				production_year INTEGER,
				condition       TEXT NOT NULL DEFAULT '',
				description     TEXT NOT NULL DEFAULT '',
				images          JSONB NOT NULL DEFAULT '[]',
				created_by      TEXT NOT NULL REFERENCES users(id),
				created_at      TIMESTAMPTZ NOT NULL,
				updated_at      TIMESTAMPTZ NOT NULL
			)`,
	},
}

// Migrate aplica en orden los pasos pendientes. La versión aplicada se registra
// en schema_migrations; cada paso corre dentro de una transacción junto con su
// registro de versión, así un paso a medias no queda marcado como aplicado.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear schema_migrations: %w", err)
	}

	var current int
	if err := pool.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("leer versión de esquema: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin migración %d: %w", m.version, err)
		}
		if _, err := tx.Exec(ctx, m.sql); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("aplicar migración %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.version, m.name); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("registrar migración %d: %w", m.version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migración %d: %w", m.version, err)
		}
	}
	return nil
}
