package handler

import (
	"net/http"
	"strconv"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

const entityRegion = "region"

func (h *Handler) ListRegions(c *gin.Context) {
	listAll(c, h.db.ListRegions)
}

// Region ids are external codes, so they are taken verbatim from the path.
func (h *Handler) GetRegion(c *gin.Context) {
	region, err := h.db.GetRegion(c.Request.Context(), c.Param("id"))
	respond(c, http.StatusOK, region, err)
}

func (h *Handler) CreateRegion(c *gin.Context) {
	var req dto.CreateRegionRequest
	if !bind(c, &req) {
		return
	}
	region, err := req.ToModel()
	if err == nil {
		err = h.db.CreateRegion(c.Request.Context(), region)
	}
	h.create(c, entityRegion, region, err)
}

func (h *Handler) UpdateRegion(c *gin.Context) {
	var p database.RegionPatch
	if !bind(c, &p) {
		return
	}
	p, err := dto.NormalizeRegionPatch(p)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	region, err := h.db.UpdateRegion(c.Request.Context(), c.Param("id"), p)
	if err == nil {
		h.mutated(entityRegion, "update")
	}
	respond(c, http.StatusOK, region, err)
}

func (h *Handler) DeleteRegion(c *gin.Context) {
	region, err := h.db.DeleteRegion(c.Request.Context(), c.Param("id"))
	h.deleted(c, entityRegion, region, err)
}

// RegionSummary totals the energy costs of the region's sites, optionally
// narrowed by the year and month query parameters.
func (h *Handler) RegionSummary(c *gin.Context) {
	year, err := optionalIntQuery(c, "year")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	month, err := optionalIntQuery(c, "month")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	sum, err := h.db.RegionSummary(c.Request.Context(), c.Param("id"), year, month)
	if err == nil && sum.Records == 0 {
		err = errorx.NoResults("energy cost")
	}
	respond(c, http.StatusOK, sum, err)
}

func optionalIntQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, errorx.Invalid(name, "must be a positive integer")
	}
	return v, nil
}
