package handler

import (
	"strings"

	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

const entityRoom = "room"

func (h *Handler) ListRooms(c *gin.Context) {
	listAll(c, h.db.ListRooms)
}

func (h *Handler) GetRoom(c *gin.Context) {
	getByID(c, h.db.GetRoom)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if !bind(c, &req) {
		return
	}
	room := req.ToModel()
	h.create(c, entityRoom, room, h.db.CreateRoom(c.Request.Context(), room))
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	updateByID(h, c, entityRoom, dto.NormalizeRoomPatch, h.db.UpdateRoom)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	deleteByID(h, c, entityRoom, h.db.DeleteRoom)
}

func (h *Handler) ListRoomsBySite(c *gin.Context) {
	listByID(c, "siteId", entityRoom, h.db.ListRoomsBySite)
}

func (h *Handler) ListRoomsByCircuitType(c *gin.Context) {
	circuit := strings.TrimSpace(c.Param("type"))
	if circuit == "" {
		i18n.RespondWithError(c, errorx.Invalid("type", "is required"))
		return
	}
	rooms, err := h.db.ListRoomsByCircuitType(c.Request.Context(), circuit)
	respondFound(c, entityRoom, rooms, err)
}
