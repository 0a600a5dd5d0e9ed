package postgres

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the common interface implemented by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type txCtxKey struct{}

// txState is the transaction carried in the context together with the hooks
// that must run once it commits.
type txState struct {
	tx pgx.Tx

	mu    sync.Mutex
	hooks []func()
}

func (s *txState) addHook(fn func()) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *txState) runHooks() {
	s.mu.Lock()
	hooks := s.hooks
	s.hooks = nil
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

func withTx(ctx context.Context, state *txState) context.Context {
	return context.WithValue(ctx, txCtxKey{}, state)
}

func txFromCtx(ctx context.Context) (*txState, bool) {
	state, ok := ctx.Value(txCtxKey{}).(*txState)
	return state, ok
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns the pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if state, ok := txFromCtx(ctx); ok {
		return state.tx
	}
	return pool
}
