package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DDL del esquema, idempotente: se puede aplicar en cada arranque.
// locations.office es única porque es la clave natural del seed.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(128) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		office VARCHAR(10) NOT NULL UNIQUE,
		zone VARCHAR(10),
		bay VARCHAR(10)
	)`,
	`CREATE TABLE IF NOT EXISTS stock (
		id BIGSERIAL PRIMARY KEY,
		serial VARCHAR(10) NOT NULL UNIQUE,
		mfg VARCHAR(10),
		dimen VARCHAR(10),
		type VARCHAR(10),
		modifier VARCHAR(10),
		location_id BIGINT REFERENCES locations(id)
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id BIGSERIAL PRIMARY KEY,
		content VARCHAR(500) NOT NULL,
		timestamp VARCHAR(50) NOT NULL
	)`,
}

// Migrate crea las tablas si no existen, dentro de una sola transacción.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migración: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar DDL: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migración: %w", err)
	}
	return nil
}
