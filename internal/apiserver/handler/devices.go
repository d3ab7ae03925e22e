package handler

import (
	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

const entityDevice = "device"

func (h *Handler) ListDevices(c *gin.Context) {
	listAll(c, h.db.ListDevices)
}

func (h *Handler) GetDevice(c *gin.Context) {
	getByID(c, h.db.GetDevice)
}

func (h *Handler) CreateDevice(c *gin.Context) {
	var req dto.CreateDeviceRequest
	if !bind(c, &req) {
		return
	}
	device := req.ToModel()
	h.create(c, entityDevice, device, h.db.CreateDevice(c.Request.Context(), device))
}

func (h *Handler) UpdateDevice(c *gin.Context) {
	updateByID(h, c, entityDevice, dto.NormalizeDevicePatch, h.db.UpdateDevice)
}

func (h *Handler) DeleteDevice(c *gin.Context) {
	deleteByID(h, c, entityDevice, h.db.DeleteDevice)
}

func (h *Handler) ListDevicesByRoom(c *gin.Context) {
	listByID(c, "roomId", entityDevice, h.db.ListDevicesByRoom)
}

// ListDevicesInstalled filters on the installation date. Both bounds are
// inclusive and either may be omitted.
func (h *Handler) ListDevicesInstalled(c *gin.Context) {
	start, err := optionalDateQuery(c, "start")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	end, err := optionalDateQuery(c, "end")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	devices, err := h.db.ListDevicesInstalledBetween(c.Request.Context(), start, end)
	respondFound(c, entityDevice, devices, err)
}

// ListHighConsumption returns the devices of a room consuming strictly more
// than the threshold query parameter.
func (h *Handler) ListHighConsumption(c *gin.Context) {
	roomID, err := idParam(c, "roomId")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	threshold, err := floatValue(c.Query("threshold"), "threshold")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	devices, err := h.db.ListDevicesAboveConsumption(c.Request.Context(), roomID, threshold)
	respondFound(c, entityDevice, devices, err)
}
