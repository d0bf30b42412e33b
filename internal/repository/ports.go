package repository

import (
	"context"

	"tonwatch/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	CreateRecord(ctx context.Context, record any) error
	InsertIgnoreConflict(ctx context.Context, conflictColumn string, record any) (bool, error)
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindWhere(ctx context.Context, dest any, q db.Query) error
	UpdateColumns(ctx context.Context, model any, column string, value any, updates map[string]any) error
	AggregateRow(ctx context.Context, model any, selectExpr string, dest any) error
}
