package persistence

import (
	"context"

	"github.com/techzone/backend/internal/domain/shared"
	"gorm.io/gorm"
)

type txKey struct{}

// TxManager implements the unit of work over gorm transactions.
// The transaction handle travels in the context, so every repository
// invoked inside WithinTx joins the same commit.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new TxManager
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

var _ shared.UnitOfWork = (*TxManager)(nil)

// WithinTx runs fn inside a database transaction. Any error rolls the
// whole unit back. Nested calls join the enclosing transaction.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom returns the transaction bound to ctx, or the base handle
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
