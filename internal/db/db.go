package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Cond is a single WHERE condition, e.g. {"amount_ton >= ?", min}.
type Cond struct {
	Expr  string
	Value any
}

// Query describes a filtered, ordered, limited read.
type Query struct {
	Conds   []Cond
	OrderBy string
	Limit   int
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable inserts the given slice of records, but only when the table
// is still empty. Used for seeding.
func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {

	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	var count int64

	elemType := slice.Index(0).Interface()
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) CreateRecord(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

// InsertIgnoreConflict inserts a single record with ON CONFLICT DO NOTHING
// on the given column. Reports whether a row was actually written.
func (f *PostgresDB) InsertIgnoreConflict(ctx context.Context, conflictColumn string, record any) (bool, error) {
	tx := f.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: conflictColumn}},
		DoNothing: true,
	}).Create(record)
	if tx.Error != nil {
		return false, fmt.Errorf("insert to table: %w", tx.Error)
	}

	return tx.RowsAffected > 0, nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) FindWhere(ctx context.Context, dest any, q Query) error {
	tx := f.DB.WithContext(ctx)
	for _, cond := range q.Conds {
		tx = tx.Where(cond.Expr, cond.Value)
	}
	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

func (f *PostgresDB) UpdateColumns(ctx context.Context, model any, column string, value any, updates map[string]any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Model(model).Where(query, value).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("updating records by %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AggregateRow scans a single aggregate row (COUNT/SUM expressions) over
// the model's table into dest.
func (f *PostgresDB) AggregateRow(ctx context.Context, model any, selectExpr string, dest any) error {
	err := f.DB.WithContext(ctx).Model(model).Select(selectExpr).Scan(dest).Error
	if err != nil {
		return fmt.Errorf("aggregate query: %w", err)
	}
	return nil
}
