package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under api. guard protects the mutating
// routes; user sign-up and login stay open. A nil guard leaves every route
// open.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, guard gin.HandlerFunc) {
	if guard == nil {
		guard = func(c *gin.Context) { c.Next() }
	}

	api.POST("/auth/login", h.Login)

	users := api.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/lookup", h.LookupUser)
		users.GET("/type/:type", h.ListUsersByType)
		users.GET("/email/:email", h.GetUserByEmail)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", guard, h.UpdateUser)
		users.DELETE("/:id", guard, h.DeleteUser)
	}

	regions := api.Group("/regions")
	{
		regions.GET("", h.ListRegions)
		regions.POST("", guard, h.CreateRegion)
		regions.GET("/:id", h.GetRegion)
		regions.PUT("/:id", guard, h.UpdateRegion)
		regions.DELETE("/:id", guard, h.DeleteRegion)
		regions.GET("/:id/summary", h.RegionSummary)
	}

	centers := api.Group("/centers")
	{
		centers.GET("", h.ListCenters)
		centers.POST("", guard, h.CreateCenter)
		centers.GET("/region/:regionId", h.ListCentersByRegion)
		centers.GET("/city/:city", h.ListCentersByCity)
		centers.GET("/:id", h.GetCenter)
		centers.PUT("/:id", guard, h.UpdateCenter)
		centers.DELETE("/:id", guard, h.DeleteCenter)
	}

	sites := api.Group("/sites")
	{
		sites.GET("", h.ListSites)
		sites.POST("", guard, h.CreateSite)
		sites.GET("/center/:centerId", h.ListSitesByCenter)
		sites.GET("/:id", h.GetSite)
		sites.PUT("/:id", guard, h.UpdateSite)
		sites.DELETE("/:id", guard, h.DeleteSite)
		sites.POST("/:id/centers/:centerId", guard, h.LinkSiteToCenter)
		sites.DELETE("/:id/centers/:centerId", guard, h.UnlinkSiteFromCenter)
	}

	rooms := api.Group("/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.POST("", guard, h.CreateRoom)
		rooms.GET("/site/:siteId", h.ListRoomsBySite)
		rooms.GET("/circuit/:type", h.ListRoomsByCircuitType)
		rooms.GET("/:id", h.GetRoom)
		rooms.PUT("/:id", guard, h.UpdateRoom)
		rooms.DELETE("/:id", guard, h.DeleteRoom)
	}

	devices := api.Group("/devices")
	{
		devices.GET("", h.ListDevices)
		devices.POST("", guard, h.CreateDevice)
		devices.GET("/installed", h.ListDevicesInstalled)
		devices.GET("/room/:roomId", h.ListDevicesByRoom)
		devices.GET("/high-consumption/:roomId", h.ListHighConsumption)
		devices.GET("/:id", h.GetDevice)
		devices.PUT("/:id", guard, h.UpdateDevice)
		devices.DELETE("/:id", guard, h.DeleteDevice)
	}

	occupancy := api.Group("/occupancy")
	{
		occupancy.GET("", h.ListOccupancies)
		occupancy.POST("", guard, h.CreateOccupancy)
		occupancy.GET("/room/:roomId/:date", h.ListOccupancyByRoomAndDate)
		occupancy.GET("/average/:roomId", h.AverageOccupancy)
		occupancy.GET("/:id", h.GetOccupancy)
		occupancy.PUT("/:id", guard, h.UpdateOccupancy)
		occupancy.DELETE("/:id", guard, h.DeleteOccupancy)
	}

	costs := api.Group("/energy-costs")
	{
		costs.GET("", h.ListEnergyCosts)
		costs.POST("", guard, h.CreateEnergyCost)
		costs.GET("/site/:siteId", h.ListEnergyCostsByBillingStart)
		costs.GET("/site/:siteId/:year/:month", h.ListEnergyCostsByPeriod)
		costs.GET("/:id", h.GetEnergyCost)
		costs.PUT("/:id", guard, h.UpdateEnergyCost)
		costs.DELETE("/:id", guard, h.DeleteEnergyCost)
	}

	substations := api.Group("/substations")
	{
		substations.GET("", h.ListSubstations)
		substations.POST("", guard, h.CreateSubstation)
		substations.GET("/site/:siteId", h.ListSubstationsBySite)
		substations.GET("/voltage/:level", h.ListSubstationsByVoltage)
		substations.GET("/:id", h.GetSubstation)
		substations.PUT("/:id", guard, h.UpdateSubstation)
		substations.DELETE("/:id", guard, h.DeleteSubstation)
	}
}
