package database

import "context"

const entityEnergyCost = "energy cost"

func (s *store) GetEnergyCost(ctx context.Context, id uint) (*EnergyCost, error) {
	return getByID[EnergyCost](ctx, s, entityEnergyCost, id)
}

func (s *store) ListEnergyCosts(ctx context.Context) ([]*EnergyCost, error) {
	return listWhere[EnergyCost](ctx, s, entityEnergyCost, nil)
}

func (s *store) CreateEnergyCost(ctx context.Context, ec *EnergyCost) error {
	return insert(ctx, s, entityEnergyCost, ec)
}

func (s *store) UpdateEnergyCost(ctx context.Context, id uint, p EnergyCostPatch) (*EnergyCost, error) {
	return update[EnergyCost](ctx, s, entityEnergyCost, id, p.columns())
}

func (s *store) DeleteEnergyCost(ctx context.Context, id uint) (*EnergyCost, error) {
	return remove[EnergyCost](ctx, s, entityEnergyCost, id)
}

func (s *store) ListEnergyCostsByPeriod(ctx context.Context, siteID uint, year, month int) ([]*EnergyCost, error) {
	return listWhere[EnergyCost](ctx, s, entityEnergyCost,
		"site_id = ? AND year = ? AND month = ?", siteID, year, month)
}

func (s *store) ListEnergyCostsByBillingStart(ctx context.Context, siteID uint, start, end Date) ([]*EnergyCost, error) {
	return listWhere[EnergyCost](ctx, s, entityEnergyCost,
		"site_id = ? AND billing_start >= ? AND billing_start <= ?", siteID, start, end)
}
