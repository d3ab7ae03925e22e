package database

import (
	"context"
	"database/sql"

	"github.com/ecosedes/facilities/internal/common/errorx"
)

const entityRegion = "region"

func (s *store) GetRegion(ctx context.Context, id string) (*Region, error) {
	return getByID[Region](ctx, s, entityRegion, id)
}

func (s *store) ListRegions(ctx context.Context) ([]*Region, error) {
	return listWhere[Region](ctx, s, entityRegion, nil)
}

func (s *store) CreateRegion(ctx context.Context, region *Region) error {
	if err := insert(ctx, s, entityRegion, region); err != nil {
		if errorx.IsKind(err, errorx.KindConflict) {
			return errorx.ErrDuplicate.With("Entity", "region "+region.ID).Wrap(err)
		}
		return err
	}
	return nil
}

func (s *store) UpdateRegion(ctx context.Context, id string, p RegionPatch) (*Region, error) {
	return update[Region](ctx, s, entityRegion, id, p.columns())
}

func (s *store) DeleteRegion(ctx context.Context, id string) (*Region, error) {
	return remove[Region](ctx, s, entityRegion, id)
}

func (s *store) RegionSummary(ctx context.Context, regionID string, year, month int) (*ConsumptionSummary, error) {
	if _, err := s.GetRegion(ctx, regionID); err != nil {
		return nil, err
	}

	linked := s.conn(ctx).
		Model(&CenterSite{}).
		Distinct("center_sites.site_id").
		Joins("JOIN centers ON centers.id = center_sites.center_id").
		Where("centers.region_id = ?", regionID)

	q := s.conn(ctx).Model(&EnergyCost{}).
		Select("COUNT(*), SUM(active_energy_kwh), SUM(reactive_energy_kvarh), SUM(invoice_amount)").
		Where("site_id IN (?)", linked)
	if year != 0 {
		q = q.Where("year = ?", year)
	}
	if month != 0 {
		q = q.Where("month = ?", month)
	}

	var (
		n                          int64
		active, reactive, invoiced sql.NullFloat64
	)
	if err := q.Row().Scan(&n, &active, &reactive, &invoiced); err != nil {
		return nil, classify(err, "energy cost")
	}
	return &ConsumptionSummary{
		RegionID:            regionID,
		Records:             n,
		ActiveEnergyKWh:     active.Float64,
		ReactiveEnergyKVArh: reactive.Float64,
		InvoiceAmount:       invoiced.Float64,
	}, nil
}
