package handler

import (
	"net/http"

	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

const entityOccupancy = "occupancy"

func (h *Handler) ListOccupancies(c *gin.Context) {
	listAll(c, h.db.ListOccupancies)
}

func (h *Handler) GetOccupancy(c *gin.Context) {
	getByID(c, h.db.GetOccupancy)
}

func (h *Handler) CreateOccupancy(c *gin.Context) {
	var req dto.CreateOccupancyRequest
	if !bind(c, &req) {
		return
	}
	o := req.ToModel()
	h.create(c, entityOccupancy, o, h.db.CreateOccupancy(c.Request.Context(), o))
}

func (h *Handler) UpdateOccupancy(c *gin.Context) {
	updateByID(h, c, entityOccupancy, dto.NormalizeOccupancyPatch, h.db.UpdateOccupancy)
}

func (h *Handler) DeleteOccupancy(c *gin.Context) {
	deleteByID(h, c, entityOccupancy, h.db.DeleteOccupancy)
}

func (h *Handler) ListOccupancyByRoomAndDate(c *gin.Context) {
	roomID, err := idParam(c, "roomId")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	date, err := dateValue(c.Param("date"), "date")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	recs, err := h.db.ListOccupancyByRoomAndDate(c.Request.Context(), roomID, date)
	respondFound(c, entityOccupancy, recs, err)
}

// AverageOccupancy reports the mean person count of a room between the
// start and end query dates.
func (h *Handler) AverageOccupancy(c *gin.Context) {
	roomID, err := idParam(c, "roomId")
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

	avg, err := h.db.AverageOccupancy(c.Request.Context(), roomID, start, end)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	if avg == nil {
		i18n.RespondWithError(c, errorx.NoResults(entityOccupancy))
		return
	}
	c.JSON(http.StatusOK, gin.H{"average": *avg})
}
