package database

import (
	"context"

	"gorm.io/gorm/clause"
)

const (
	entitySite       = "site"
	entityCenterSite = "center site link"
)

func (s *store) GetSite(ctx context.Context, id uint) (*Site, error) {
	return getByID[Site](ctx, s, entitySite, id)
}

func (s *store) ListSites(ctx context.Context) ([]*Site, error) {
	return listWhere[Site](ctx, s, entitySite, nil)
}

func (s *store) CreateSite(ctx context.Context, site *Site) error {
	return insert(ctx, s, entitySite, site)
}

func (s *store) UpdateSite(ctx context.Context, id uint, p SitePatch) (*Site, error) {
	return update[Site](ctx, s, entitySite, id, p.columns())
}

func (s *store) DeleteSite(ctx context.Context, id uint) (*Site, error) {
	return remove[Site](ctx, s, entitySite, id)
}

func (s *store) ListSiteIDsByCenter(ctx context.Context, centerID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := s.conn(ctx).Model(&CenterSite{}).
		Where("center_id = ?", centerID).
		Order("site_id asc").
		Pluck("site_id", &ids).Error
	if err != nil {
		return nil, classify(err, entityCenterSite)
	}
	return ids, nil
}

func (s *store) ListSitesByCenter(ctx context.Context, centerID uint) ([]*Site, error) {
	sites := make([]*Site, 0)
	err := s.conn(ctx).
		Joins("JOIN center_sites ON center_sites.site_id = sites.id").
		Where("center_sites.center_id = ?", centerID).
		Order("sites.id asc").
		Find(&sites).Error
	if err != nil {
		return nil, classify(err, entitySite)
	}
	return sites, nil
}

func (s *store) LinkSiteToCenter(ctx context.Context, siteID, centerID uint) (*CenterSite, error) {
	link := &CenterSite{SiteID: siteID, CenterID: centerID}
	if err := insert(ctx, s, entityCenterSite, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *store) UnlinkSiteFromCenter(ctx context.Context, siteID, centerID uint) (*CenterSite, error) {
	var link CenterSite
	db := s.conn(ctx)
	if err := db.Where("site_id = ? AND center_id = ?", siteID, centerID).Take(&link).Error; err != nil {
		return nil, classify(err, entityCenterSite)
	}
	if err := db.Where("site_id = ? AND center_id = ?", siteID, centerID).Delete(&CenterSite{}).Error; err != nil {
		return nil, classify(err, entityCenterSite)
	}
	return &link, nil
}

func (s *store) LinkSiteToCenterIfAbsent(ctx context.Context, siteID, centerID uint) (bool, error) {
	res := s.conn(ctx).Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&CenterSite{SiteID: siteID, CenterID: centerID})
	if res.Error != nil {
		return false, classify(res.Error, entityCenterSite)
	}
	return res.RowsAffected > 0, nil
}

// FindOrCreateSiteByName returns the lowest-id site with that name, creating
// one when none exists. The bool reports whether a site was created.
func (s *store) FindOrCreateSiteByName(ctx context.Context, name string, address *string) (*Site, bool, error) {
	var site Site
	res := s.conn(ctx).Where("name = ?", name).Order("id asc").Limit(1).Find(&site)
	if res.Error != nil {
		return nil, false, classify(res.Error, entitySite)
	}
	if res.RowsAffected > 0 {
		return &site, false, nil
	}
	site = Site{Name: name, Address: address}
	if err := s.CreateSite(ctx, &site); err != nil {
		return nil, false, err
	}
	return &site, true, nil
}
