package database

import "context"

const entitySubstation = "substation"

func (s *store) GetSubstation(ctx context.Context, id uint) (*Substation, error) {
	return getByID[Substation](ctx, s, entitySubstation, id)
}

func (s *store) ListSubstations(ctx context.Context) ([]*Substation, error) {
	return listWhere[Substation](ctx, s, entitySubstation, nil)
}

func (s *store) CreateSubstation(ctx context.Context, sub *Substation) error {
	return insert(ctx, s, entitySubstation, sub)
}

func (s *store) UpdateSubstation(ctx context.Context, id uint, p SubstationPatch) (*Substation, error) {
	return update[Substation](ctx, s, entitySubstation, id, p.columns())
}

func (s *store) DeleteSubstation(ctx context.Context, id uint) (*Substation, error) {
	return remove[Substation](ctx, s, entitySubstation, id)
}

func (s *store) ListSubstationsBySite(ctx context.Context, siteID uint) ([]*Substation, error) {
	return listWhere[Substation](ctx, s, entitySubstation, "site_id = ?", siteID)
}

func (s *store) ListSubstationsByVoltage(ctx context.Context, kva float64) ([]*Substation, error) {
	return listWhere[Substation](ctx, s, entitySubstation, "voltage_level_kva = ?", kva)
}
