package database

import (
	"context"
)

// Database is the record store. Every call is independent and mutating
// calls commit on their own; list calls return an empty slice, not an
// error, when nothing matches.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Transaction runs fn in a transaction carried by ctx.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	GetUser(ctx context.Context, id uint) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	// CreateUser lowercases the email and rejects duplicates with a conflict.
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, id uint, p UserPatch) (*User, error)
	DeleteUser(ctx context.Context, id uint) (*User, error)
	ListUsersByAccountType(ctx context.Context, t AccountType) ([]*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	GetRegion(ctx context.Context, id string) (*Region, error)
	ListRegions(ctx context.Context) ([]*Region, error)
	CreateRegion(ctx context.Context, region *Region) error
	UpdateRegion(ctx context.Context, id string, p RegionPatch) (*Region, error)
	DeleteRegion(ctx context.Context, id string) (*Region, error)
	// RegionSummary sums the energy costs of the sites linked to the
	// region's centers. Zero year or month means no filter on that field.
	RegionSummary(ctx context.Context, regionID string, year, month int) (*ConsumptionSummary, error)

	GetCenter(ctx context.Context, id uint) (*Center, error)
	ListCenters(ctx context.Context) ([]*Center, error)
	// CreateCenter rejects a (name, region) pair that already exists.
	CreateCenter(ctx context.Context, center *Center) error
	UpdateCenter(ctx context.Context, id uint, p CenterPatch) (*Center, error)
	DeleteCenter(ctx context.Context, id uint) (*Center, error)
	ListCentersByRegion(ctx context.Context, regionID string) ([]*Center, error)
	ListCentersByCity(ctx context.Context, city string) ([]*Center, error)

	GetSite(ctx context.Context, id uint) (*Site, error)
	ListSites(ctx context.Context) ([]*Site, error)
	CreateSite(ctx context.Context, site *Site) error
	UpdateSite(ctx context.Context, id uint, p SitePatch) (*Site, error)
	DeleteSite(ctx context.Context, id uint) (*Site, error)
	ListSiteIDsByCenter(ctx context.Context, centerID uint) ([]uint, error)
	ListSitesByCenter(ctx context.Context, centerID uint) ([]*Site, error)
	LinkSiteToCenter(ctx context.Context, siteID, centerID uint) (*CenterSite, error)
	UnlinkSiteFromCenter(ctx context.Context, siteID, centerID uint) (*CenterSite, error)

	GetRoom(ctx context.Context, id uint) (*Room, error)
	ListRooms(ctx context.Context) ([]*Room, error)
	CreateRoom(ctx context.Context, room *Room) error
	UpdateRoom(ctx context.Context, id uint, p RoomPatch) (*Room, error)
	DeleteRoom(ctx context.Context, id uint) (*Room, error)
	ListRoomsBySite(ctx context.Context, siteID uint) ([]*Room, error)
	ListRoomsByCircuitType(ctx context.Context, circuitType string) ([]*Room, error)

	GetDevice(ctx context.Context, id uint) (*Device, error)
	ListDevices(ctx context.Context) ([]*Device, error)
	CreateDevice(ctx context.Context, device *Device) error
	UpdateDevice(ctx context.Context, id uint, p DevicePatch) (*Device, error)
	DeleteDevice(ctx context.Context, id uint) (*Device, error)
	ListDevicesByRoom(ctx context.Context, roomID uint) ([]*Device, error)
	// ListDevicesInstalledBetween is inclusive on both ends; a nil bound is open.
	ListDevicesInstalledBetween(ctx context.Context, start, end *Date) ([]*Device, error)
	// ListDevicesAboveConsumption returns devices of the room whose
	// consumption is strictly greater than threshold.
	ListDevicesAboveConsumption(ctx context.Context, roomID uint, threshold float64) ([]*Device, error)

	GetOccupancy(ctx context.Context, id uint) (*Occupancy, error)
	ListOccupancies(ctx context.Context) ([]*Occupancy, error)
	CreateOccupancy(ctx context.Context, o *Occupancy) error
	UpdateOccupancy(ctx context.Context, id uint, p OccupancyPatch) (*Occupancy, error)
	DeleteOccupancy(ctx context.Context, id uint) (*Occupancy, error)
	ListOccupancyByRoomAndDate(ctx context.Context, roomID uint, date Date) ([]*Occupancy, error)
	// AverageOccupancy returns nil when no observation falls in [start, end].
	AverageOccupancy(ctx context.Context, roomID uint, start, end Date) (*float64, error)

	GetEnergyCost(ctx context.Context, id uint) (*EnergyCost, error)
	ListEnergyCosts(ctx context.Context) ([]*EnergyCost, error)
	CreateEnergyCost(ctx context.Context, ec *EnergyCost) error
	UpdateEnergyCost(ctx context.Context, id uint, p EnergyCostPatch) (*EnergyCost, error)
	DeleteEnergyCost(ctx context.Context, id uint) (*EnergyCost, error)
	ListEnergyCostsByPeriod(ctx context.Context, siteID uint, year, month int) ([]*EnergyCost, error)
	ListEnergyCostsByBillingStart(ctx context.Context, siteID uint, start, end Date) ([]*EnergyCost, error)

	GetSubstation(ctx context.Context, id uint) (*Substation, error)
	ListSubstations(ctx context.Context) ([]*Substation, error)
	CreateSubstation(ctx context.Context, s *Substation) error
	UpdateSubstation(ctx context.Context, id uint, p SubstationPatch) (*Substation, error)
	DeleteSubstation(ctx context.Context, id uint) (*Substation, error)
	ListSubstationsBySite(ctx context.Context, siteID uint) ([]*Substation, error)
	ListSubstationsByVoltage(ctx context.Context, kva float64) ([]*Substation, error)

	// Bulk import helpers. Each insert is skipped when the row exists.
	CreateRegionIfAbsent(ctx context.Context, region *Region) (bool, error)
	CreateCenterIfAbsent(ctx context.Context, center *Center) (bool, error)
	FindOrCreateSiteByName(ctx context.Context, name string, address *string) (*Site, bool, error)
	LinkSiteToCenterIfAbsent(ctx context.Context, siteID, centerID uint) (bool, error)
	// SyncSequences realigns auto-increment counters after explicit-id inserts.
	SyncSequences(ctx context.Context) error
}
