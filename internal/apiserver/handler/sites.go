package handler

import (
	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/gin-gonic/gin"
)

const (
	entitySite       = "site"
	entityCenterSite = "center site link"
)

func (h *Handler) ListSites(c *gin.Context) {
	listAll(c, h.db.ListSites)
}

func (h *Handler) GetSite(c *gin.Context) {
	getByID(c, h.db.GetSite)
}

func (h *Handler) CreateSite(c *gin.Context) {
	var req dto.CreateSiteRequest
	if !bind(c, &req) {
		return
	}
	site, err := req.ToModel()
	if err == nil {
		err = h.db.CreateSite(c.Request.Context(), site)
	}
	h.create(c, entitySite, site, err)
}

func (h *Handler) UpdateSite(c *gin.Context) {
	updateByID(h, c, entitySite, dto.NormalizeSitePatch, h.db.UpdateSite)
}

func (h *Handler) DeleteSite(c *gin.Context) {
	deleteByID(h, c, entitySite, h.db.DeleteSite)
}

func (h *Handler) ListSitesByCenter(c *gin.Context) {
	listByID(c, "centerId", entitySite, h.db.ListSitesByCenter)
}

// LinkSiteToCenter attaches the site in the path to the center in the path.
func (h *Handler) LinkSiteToCenter(c *gin.Context) {
	siteID, centerID, ok := linkParams(c)
	if !ok {
		return
	}
	link, err := h.db.LinkSiteToCenter(c.Request.Context(), siteID, centerID)
	h.create(c, entityCenterSite, link, err)
}

func (h *Handler) UnlinkSiteFromCenter(c *gin.Context) {
	siteID, centerID, ok := linkParams(c)
	if !ok {
		return
	}
	link, err := h.db.UnlinkSiteFromCenter(c.Request.Context(), siteID, centerID)
	h.deleted(c, entityCenterSite, link, err)
}

func linkParams(c *gin.Context) (siteID, centerID uint, ok bool) {
	siteID, err := idParam(c, "id")
	if err == nil {
		centerID, err = idParam(c, "centerId")
	}
	if err != nil {
		i18n.RespondWithError(c, err)
		return 0, 0, false
	}
	return siteID, centerID, true
}
