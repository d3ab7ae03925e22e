package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ecosedes/facilities/internal/common/config"
	"github.com/ecosedes/facilities/pkg/trace"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var tracer = trace.Tracer("github.com/ecosedes/facilities/database")

// store is the gorm implementation shared by every driver.
type store struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

func openStore(dialector gorm.Dialector, cfg *config.DatabaseConfig) (*store, error) {
	level := logger.Warn
	if cfg.Debug {
		level = logger.Info
	}
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	return &store{db: gormDB, cfg: cfg}, nil
}

func (s *store) migrate() error {
	if err := s.db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *store) conn(ctx context.Context) *gorm.DB {
	return getDBFromContext(ctx, s.db)
}

// span opens a tracing span for a store operation on entity.
func span(ctx context.Context, op, entity string) *trace.SpanScope {
	return tracer.Start(ctx, "db."+op).WithAttrs(
		attribute.String("db.operation", op),
		attribute.String("db.entity", entity),
	)
}

func getByID[T any](ctx context.Context, s *store, entity string, id any) (*T, error) {
	var rec T
	if err := s.conn(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		return nil, classify(err, entity)
	}
	return &rec, nil
}

func listWhere[T any](ctx context.Context, s *store, entity string, query any, args ...any) ([]*T, error) {
	recs := make([]*T, 0)
	db := s.conn(ctx)
	if query != nil {
		db = db.Where(query, args...)
	}
	if err := db.Order("id asc").Find(&recs).Error; err != nil {
		return nil, classify(err, entity)
	}
	return recs, nil
}

func insert[T any](ctx context.Context, s *store, entity string, rec *T) error {
	sc := span(ctx, "create", entity)
	defer sc.End()

	err := classify(s.conn(sc.Ctx).Omit(clause.Associations).Create(rec).Error, entity)
	sc.Fail(err)
	return err
}

// update applies cols to the row and returns it re-read. An empty column
// set only verifies the row exists.
func update[T any](ctx context.Context, s *store, entity string, id any, cols columns) (*T, error) {
	sc := span(ctx, "update", entity)
	defer sc.End()

	rec, err := getByID[T](sc.Ctx, s, entity, id)
	if err != nil {
		sc.Fail(err)
		return nil, err
	}
	if len(cols) == 0 {
		return rec, nil
	}

	err = s.conn(sc.Ctx).Model(new(T)).Where("id = ?", id).Updates(map[string]any(cols)).Error
	if err != nil {
		err = classify(err, entity)
		sc.Fail(err)
		return nil, err
	}
	return getByID[T](sc.Ctx, s, entity, id)
}

// remove deletes the row and returns what it held.
func remove[T any](ctx context.Context, s *store, entity string, id any) (*T, error) {
	sc := span(ctx, "delete", entity)
	defer sc.End()

	rec, err := getByID[T](sc.Ctx, s, entity, id)
	if err != nil {
		sc.Fail(err)
		return nil, err
	}
	if err := s.conn(sc.Ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		err = classify(err, entity)
		sc.Fail(err)
		return nil, err
	}
	return rec, nil
}

// exists reports whether any row of T matches the query.
func exists[T any](ctx context.Context, s *store, entity string, query any, args ...any) (bool, error) {
	var n int64
	if err := s.conn(ctx).Model(new(T)).Where(query, args...).Limit(1).Count(&n).Error; err != nil {
		return false, classify(err, entity)
	}
	return n > 0, nil
}
