package testutil

import (
	"context"
	"database/sql"
	"strings"

	"github.com/zaibaitech/asrar-sub000/internal/db"
)

// FailingUoW runs transactions like the production UnitOfWork but makes
// every write whose SQL mentions Table fail with Err. Reads pass through,
// so a service can load state and then fail while persisting it.
type FailingUoW struct {
	DB    *sql.DB
	Table string
	Err   error
}

var _ db.UnitOfWork = (*FailingUoW)(nil)

func (u *FailingUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWrites{DBTX: tx, table: u.Table, err: u.Err})
	})
}

type failingWrites struct {
	db.DBTX
	table string
	err   error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.table == "" || strings.Contains(query, f.table) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
