package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB amplía Querier con la capacidad de abrir transacciones.
// *pgxpool.Pool y pgx.Tx lo satisfacen.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}
