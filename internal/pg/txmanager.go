package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=txmanager.go -destination=txmanager_mock.go -package=pg

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

type txManager struct {
	pool *pgxpool.Pool
}

func NewTXManager(pool *pgxpool.Pool) TXManager {
	return &txManager{pool: pool}
}

func (m *txManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	return pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func txFromContext(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}
