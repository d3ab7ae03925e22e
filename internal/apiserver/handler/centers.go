package handler

import (
	"net/http"

	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

const entityCenter = "center"

func (h *Handler) ListCenters(c *gin.Context) {
	listAll(c, h.db.ListCenters)
}

func (h *Handler) GetCenter(c *gin.Context) {
	getByID(c, h.db.GetCenter)
}

func (h *Handler) CreateCenter(c *gin.Context) {
	var req dto.CreateCenterRequest
	if !bind(c, &req) {
		return
	}
	center, err := req.ToModel()
	if err == nil {
		err = h.db.CreateCenter(c.Request.Context(), center)
	}
	h.create(c, entityCenter, center, err)
}

func (h *Handler) UpdateCenter(c *gin.Context) {
	updateByID(h, c, entityCenter, dto.NormalizeCenterPatch, h.db.UpdateCenter)
}

func (h *Handler) DeleteCenter(c *gin.Context) {
	deleteByID(h, c, entityCenter, h.db.DeleteCenter)
}

// ListCentersByRegion returns an empty list for a region without centers.
func (h *Handler) ListCentersByRegion(c *gin.Context) {
	centers, err := h.db.ListCentersByRegion(c.Request.Context(), c.Param("regionId"))
	respond(c, http.StatusOK, centers, err)
}

// ListCentersByCity matches on the normalized city name.
func (h *Handler) ListCentersByCity(c *gin.Context) {
	city := dto.NormalizeCity(c.Param("city"))
	if city == "" {
		i18n.RespondWithError(c, errorx.Invalid("city", "is required"))
		return
	}
	centers, err := h.db.ListCentersByCity(c.Request.Context(), city)
	respondFound(c, entityCenter, centers, err)
}
