package handler

import (
	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

const entityEnergyCost = "energy cost"

func (h *Handler) ListEnergyCosts(c *gin.Context) {
	listAll(c, h.db.ListEnergyCosts)
}

func (h *Handler) GetEnergyCost(c *gin.Context) {
	getByID(c, h.db.GetEnergyCost)
}

func (h *Handler) CreateEnergyCost(c *gin.Context) {
	var req dto.CreateEnergyCostRequest
	if !bind(c, &req) {
		return
	}
	ec := req.ToModel()
	h.create(c, entityEnergyCost, ec, h.db.CreateEnergyCost(c.Request.Context(), ec))
}

func (h *Handler) UpdateEnergyCost(c *gin.Context) {
	updateByID(h, c, entityEnergyCost, dto.NormalizeEnergyCostPatch, h.db.UpdateEnergyCost)
}

func (h *Handler) DeleteEnergyCost(c *gin.Context) {
	deleteByID(h, c, entityEnergyCost, h.db.DeleteEnergyCost)
}

func (h *Handler) ListEnergyCostsByPeriod(c *gin.Context) {
	siteID, err := idParam(c, "siteId")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	year, err := intParam(c, "year")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	month, err := intParam(c, "month")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	recs, err := h.db.ListEnergyCostsByPeriod(c.Request.Context(), siteID, year, month)
	respondFound(c, entityEnergyCost, recs, err)
}

// ListEnergyCostsByBillingStart filters a site's records on billing_start
// within the inclusive start and end query dates.
func (h *Handler) ListEnergyCostsByBillingStart(c *gin.Context) {
	siteID, err := idParam(c, "siteId")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	start, err := requiredDateQuery(c, "start")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	end, err := requiredDateQuery(c, "end")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	recs, err := h.db.ListEnergyCostsByBillingStart(c.Request.Context(), siteID, start, end)
	respondFound(c, entityEnergyCost, recs, err)
}
