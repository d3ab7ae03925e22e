package database

import (
	"context"

	"gorm.io/gorm/clause"
)

func (s *store) CreateRegionIfAbsent(ctx context.Context, region *Region) (bool, error) {
	return insertIgnore(ctx, s, entityRegion, region)
}

// CreateCenterIfAbsent inserts a center with a caller-supplied id. A clash on
// either the id or the (name, region) pair skips the row.
func (s *store) CreateCenterIfAbsent(ctx context.Context, center *Center) (bool, error) {
	return insertIgnore(ctx, s, entityCenter, center)
}

// SyncSequences is a no-op outside postgres, where explicit ids do not move
// the serial sequence.
func (s *store) SyncSequences(ctx context.Context) error {
	return nil
}

func insertIgnore[T any](ctx context.Context, s *store, entity string, rec *T) (bool, error) {
	sc := span(ctx, "create_if_absent", entity)
	defer sc.End()

	res := s.conn(sc.Ctx).Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rec)
	if res.Error != nil {
		err := classify(res.Error, entity)
		sc.Fail(err)
		return false, err
	}
	return res.RowsAffected > 0, nil
}
