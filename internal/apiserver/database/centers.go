package database

import (
	"context"

	"github.com/ecosedes/facilities/internal/common/errorx"
)

const entityCenter = "center"

func (s *store) GetCenter(ctx context.Context, id uint) (*Center, error) {
	return getByID[Center](ctx, s, entityCenter, id)
}

func (s *store) ListCenters(ctx context.Context) ([]*Center, error) {
	return listWhere[Center](ctx, s, entityCenter, nil)
}

func (s *store) CreateCenter(ctx context.Context, center *Center) error {
	if err := s.checkCenterFree(ctx, center.Name, center.RegionID, 0); err != nil {
		return err
	}
	if err := insert(ctx, s, entityCenter, center); err != nil {
		return centerConflict(err, center.Name, center.RegionID)
	}
	return nil
}

// UpdateCenter re-checks (name, region) against every other center when
// either half changes.
func (s *store) UpdateCenter(ctx context.Context, id uint, p CenterPatch) (*Center, error) {
	current, err := s.GetCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	name, region := current.Name, current.RegionID
	nameChanged := p.Name.ApplyTo(&name)
	regionChanged := p.RegionID.ApplyTo(&region)
	if nameChanged || regionChanged {
		if err := s.checkCenterFree(ctx, name, region, id); err != nil {
			return nil, err
		}
	}

	c, err := update[Center](ctx, s, entityCenter, id, p.columns())
	if err != nil {
		return nil, centerConflict(err, name, region)
	}
	return c, nil
}

func (s *store) DeleteCenter(ctx context.Context, id uint) (*Center, error) {
	return remove[Center](ctx, s, entityCenter, id)
}

func (s *store) ListCentersByRegion(ctx context.Context, regionID string) ([]*Center, error) {
	return listWhere[Center](ctx, s, entityCenter, "region_id = ?", regionID)
}

// ListCentersByCity matches the stored city exactly; callers normalize the
// input the same way cities are normalized on write.
func (s *store) ListCentersByCity(ctx context.Context, city string) ([]*Center, error) {
	return listWhere[Center](ctx, s, entityCenter, "city = ?", city)
}

func (s *store) checkCenterFree(ctx context.Context, name, regionID string, except uint) error {
	taken, err := exists[Center](ctx, s, entityCenter,
		"name = ? AND region_id = ? AND id <> ?", name, regionID, except)
	if err != nil {
		return err
	}
	if taken {
		return errorx.ErrCenterExists.With("Name", name).With("RegionID", regionID)
	}
	return nil
}

func centerConflict(err error, name, regionID string) error {
	if errorx.IsKind(err, errorx.KindConflict) {
		return errorx.ErrCenterExists.With("Name", name).With("RegionID", regionID).Wrap(err)
	}
	return err
}
