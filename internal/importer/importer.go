package importer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"go.uber.org/zap"
)

// Stats is the tally of one import run.
type Stats struct {
	Rows    int `json:"rows"`
	Regions int `json:"regions_created"`
	Centers int `json:"centers_created"`
	Sites   int `json:"sites_created"`
	Links   int `json:"links_created"`
	Skipped int `json:"rows_skipped"`
}

// Importer loads regions, centers and sites into the record store. Rows are
// written one by one; existing records are left as they are, so a run can
// be repeated.
type Importer struct {
	db      database.Database
	logger  *zap.Logger
	ownerID uint
}

// New returns an importer that assigns every created center to ownerID.
func New(db database.Database, ownerID uint, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{db: db, logger: logger.Named("importer"), ownerID: ownerID}
}

// Import runs three passes over rows: regions, then centers, then sites and
// their center links. A row failing with a classified error is logged and
// skipped; unclassified store errors stop the run.
func (im *Importer) Import(ctx context.Context, rows []Row) (Stats, error) {
	st := Stats{Rows: len(rows)}
	skipped := make(map[int]struct{})
	skip := func(r Row, stage string, err error) error {
		if errorx.KindOf(err) == errorx.KindInternal {
			return fmt.Errorf("line %d (%s): %w", r.Line, stage, err)
		}
		im.logger.Warn("row skipped",
			zap.Int("line", r.Line),
			zap.String("stage", stage),
			zap.Error(err),
		)
		skipped[r.Line] = struct{}{}
		return nil
	}

	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		created, err := im.region(ctx, r)
		if err != nil {
			if err := skip(r, "region", err); err != nil {
				return st, err
			}
			continue
		}
		if created {
			st.Regions++
		}
	}

	for _, r := range rows {
		if _, bad := skipped[r.Line]; bad {
			continue
		}
		if err := ctx.Err(); err != nil {
			return st, err
		}
		created, err := im.center(ctx, r)
		if err != nil {
			if err := skip(r, "center", err); err != nil {
				return st, err
			}
			continue
		}
		if created {
			st.Centers++
		}
	}

	for _, r := range rows {
		if _, bad := skipped[r.Line]; bad || blank(r.Site) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return st, err
		}
		siteCreated, linkCreated, err := im.site(ctx, r)
		if err != nil {
			if err := skip(r, "site", err); err != nil {
				return st, err
			}
			continue
		}
		if siteCreated {
			st.Sites++
		}
		if linkCreated {
			st.Links++
		}
	}

	if err := im.db.SyncSequences(ctx); err != nil {
		return st, fmt.Errorf("failed to sync sequences: %w", err)
	}
	st.Skipped = len(skipped)
	im.logger.Info("import finished",
		zap.Int("rows", st.Rows),
		zap.Int("regions_created", st.Regions),
		zap.Int("centers_created", st.Centers),
		zap.Int("sites_created", st.Sites),
		zap.Int("links_created", st.Links),
		zap.Int("rows_skipped", st.Skipped),
	)
	return st, nil
}

func (im *Importer) region(ctx context.Context, r Row) (bool, error) {
	if r.RegionCode == "" {
		return false, errorx.Invalid("Codigo Regional", "is required")
	}
	return im.db.CreateRegionIfAbsent(ctx, &database.Region{ID: r.RegionCode, Name: r.RegionName})
}

func (im *Importer) center(ctx context.Context, r Row) (bool, error) {
	id, err := centerID(r.CenterCode)
	if err != nil {
		return false, err
	}
	if r.CenterName == "" {
		return false, errorx.Invalid("Descripcion Centro de Costos", "is required")
	}
	return im.db.CreateCenterIfAbsent(ctx, &database.Center{
		ID:       id,
		Name:     r.CenterName,
		City:     dto.NormalizeCity(r.City),
		RegionID: r.RegionCode,
		OwnerID:  im.ownerID,
	})
}

func (im *Importer) site(ctx context.Context, r Row) (siteCreated, linkCreated bool, err error) {
	id, err := centerID(r.CenterCode)
	if err != nil {
		return false, false, err
	}
	var address *string
	if !blank(r.Address) {
		address = &r.Address
	}
	site, siteCreated, err := im.db.FindOrCreateSiteByName(ctx, r.Site, address)
	if err != nil {
		return false, false, err
	}
	linkCreated, err = im.db.LinkSiteToCenterIfAbsent(ctx, site.ID, id)
	if err != nil {
		return siteCreated, false, err
	}
	im.logger.Debug("site linked",
		zap.Int("line", r.Line),
		zap.Uint("site_id", site.ID),
		zap.Uint("center_id", id),
		zap.Bool("site_created", siteCreated),
		zap.Bool("link_created", linkCreated),
	)
	return siteCreated, linkCreated, nil
}

func centerID(code string) (uint, error) {
	v, err := strconv.ParseUint(code, 10, 0)
	if err != nil || v == 0 {
		return 0, errorx.ErrInvalidID.With("Field", "Cod")
	}
	return uint(v), nil
}
