package postgres_test

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/4ak45h/Legacy-Planner/pkg/postgres"
)

// Both executors the repositories are wired with must satisfy Querier.
var (
	_ postgres.Querier = (*pgxpool.Pool)(nil)
	_ postgres.Querier = (pgx.Tx)(nil)
)
