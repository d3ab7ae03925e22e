package handler

import (
	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

const entitySubstation = "substation"

func (h *Handler) ListSubstations(c *gin.Context) {
	listAll(c, h.db.ListSubstations)
}

func (h *Handler) GetSubstation(c *gin.Context) {
	getByID(c, h.db.GetSubstation)
}

func (h *Handler) CreateSubstation(c *gin.Context) {
	var req dto.CreateSubstationRequest
	if !bind(c, &req) {
		return
	}
	s := req.ToModel()
	h.create(c, entitySubstation, s, h.db.CreateSubstation(c.Request.Context(), s))
}

func (h *Handler) UpdateSubstation(c *gin.Context) {
	updateByID(h, c, entitySubstation, dto.NormalizeSubstationPatch, h.db.UpdateSubstation)
}

func (h *Handler) DeleteSubstation(c *gin.Context) {
	deleteByID(h, c, entitySubstation, h.db.DeleteSubstation)
}

func (h *Handler) ListSubstationsBySite(c *gin.Context) {
	listByID(c, "siteId", entitySubstation, h.db.ListSubstationsBySite)
}

// ListSubstationsByVoltage matches the voltage level in kVA exactly.
func (h *Handler) ListSubstationsByVoltage(c *gin.Context) {
	level, err := floatValue(c.Param("level"), "level")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	recs, err := h.db.ListSubstationsByVoltage(c.Request.Context(), level)
	respondFound(c, entitySubstation, recs, err)
}
