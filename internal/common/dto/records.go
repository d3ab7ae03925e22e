package dto

import (
	"strings"

	"github.com/ecosedes/facilities/internal/apiserver/database"
)

type CreateRegionRequest struct {
	ID   string `json:"id" binding:"required,max=64"`
	Name string `json:"name" binding:"required,max=255"`
}

func (r *CreateRegionRequest) ToModel() (*database.Region, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return nil, invalid("id", "is required")
	}
	if err := requireText("name", r.Name); err != nil {
		return nil, err
	}
	return &database.Region{ID: id, Name: strings.TrimSpace(r.Name)}, nil
}

type CreateCenterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	City     string `json:"city" binding:"required,max=255"`
	RegionID string `json:"region_id" binding:"required,max=64"`
	OwnerID  uint   `json:"owner_id" binding:"required"`
}

// ToModel validates the payload and normalizes the city name.
func (r *CreateCenterRequest) ToModel() (*database.Center, error) {
	if err := requireText("name", r.Name); err != nil {
		return nil, err
	}
	if err := requireText("city", r.City); err != nil {
		return nil, err
	}
	return &database.Center{
		Name:     strings.TrimSpace(r.Name),
		City:     NormalizeCity(r.City),
		RegionID: strings.TrimSpace(r.RegionID),
		OwnerID:  r.OwnerID,
	}, nil
}

type CreateSiteRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

func (r *CreateSiteRequest) ToModel() (*database.Site, error) {
	if err := requireText("name", r.Name); err != nil {
		return nil, err
	}
	return &database.Site{Name: strings.TrimSpace(r.Name), Address: r.Address}, nil
}

type CreateRoomRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	CircuitType *string `json:"circuit_type" binding:"omitempty,max=255"`
	SiteID      uint    `json:"site_id" binding:"required"`
}

func (r *CreateRoomRequest) ToModel() *database.Room {
	return &database.Room{Name: r.Name, CircuitType: r.CircuitType, SiteID: r.SiteID}
}

type CreateDeviceRequest struct {
	Name        *string        `json:"name" binding:"omitempty,max=255"`
	Description *string        `json:"description"`
	Consumption *float64       `json:"consumption" binding:"omitempty,gte=0"`
	InstalledAt *database.Date `json:"installed_at"`
	RoomID      uint           `json:"room_id" binding:"required"`
	OwnerID     *uint          `json:"owner_id"`
}

func (r *CreateDeviceRequest) ToModel() *database.Device {
	return &database.Device{
		Name:        r.Name,
		Description: r.Description,
		Consumption: r.Consumption,
		InstalledAt: r.InstalledAt,
		RoomID:      r.RoomID,
		OwnerID:     r.OwnerID,
	}
}

type CreateOccupancyRequest struct {
	RoomID      uint           `json:"room_id" binding:"required"`
	PersonCount *int           `json:"person_count" binding:"omitempty,gte=0"`
	Duration    *int64         `json:"duration" binding:"omitempty,gte=0"`
	Date        *database.Date `json:"date"`
}

func (r *CreateOccupancyRequest) ToModel() *database.Occupancy {
	return &database.Occupancy{
		RoomID:      r.RoomID,
		PersonCount: r.PersonCount,
		Duration:    r.Duration,
		Date:        r.Date,
	}
}

type CreateEnergyCostRequest struct {
	SiteID              uint           `json:"site_id" binding:"required"`
	Year                *int           `json:"year"`
	Month               *int           `json:"month" binding:"omitempty,gte=1,lte=12"`
	BillingStart        *database.Date `json:"billing_start"`
	BillingEnd          *database.Date `json:"billing_end"`
	ActiveEnergyKWh     *float64       `json:"active_energy_kwh"`
	ReactiveEnergyKVArh *float64       `json:"reactive_energy_kvarh"`
	InvoiceAmount       *float64       `json:"invoice_amount"`
	Contract            *string        `json:"contract" binding:"omitempty,max=255"`
	TraineeCount        *int           `json:"trainee_count"`
	StaffCount          *int           `json:"staff_count"`
}

func (r *CreateEnergyCostRequest) ToModel() *database.EnergyCost {
	return &database.EnergyCost{
		SiteID:              r.SiteID,
		Year:                r.Year,
		Month:               r.Month,
		BillingStart:        r.BillingStart,
		BillingEnd:          r.BillingEnd,
		ActiveEnergyKWh:     r.ActiveEnergyKWh,
		ReactiveEnergyKVArh: r.ReactiveEnergyKVArh,
		InvoiceAmount:       r.InvoiceAmount,
		Contract:            r.Contract,
		TraineeCount:        r.TraineeCount,
		StaffCount:          r.StaffCount,
	}
}

type CreateSubstationRequest struct {
	Name         *string  `json:"name" binding:"omitempty,max=255"`
	SiteID       uint     `json:"site_id" binding:"required"`
	VoltageLevel *float64 `json:"voltage_level"`
}

func (r *CreateSubstationRequest) ToModel() *database.Substation {
	return &database.Substation{Name: r.Name, SiteID: r.SiteID, VoltageLevel: r.VoltageLevel}
}
