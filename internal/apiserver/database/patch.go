package database

import (
	"github.com/ecosedes/facilities/pkg/patch"
)

// Patch structs carry partial updates. A field that is absent or null is
// left untouched; identifiers are not patchable.

type UserPatch struct {
	FirstName   patch.Optional[string]      `json:"first_name"`
	LastName    patch.Optional[string]      `json:"last_name"`
	Email       patch.Optional[string]      `json:"email"`
	Password    patch.Optional[string]      `json:"-"` // bcrypt hash, set by the caller
	AccountType patch.Optional[AccountType] `json:"account_type"`
}

type RegionPatch struct {
	Name patch.Optional[string] `json:"name"`
}

type CenterPatch struct {
	Name     patch.Optional[string] `json:"name"`
	City     patch.Optional[string] `json:"city"`
	RegionID patch.Optional[string] `json:"region_id"`
	OwnerID  patch.Optional[uint]   `json:"owner_id"`
}

type SitePatch struct {
	Name    patch.Optional[string] `json:"name"`
	Address patch.Optional[string] `json:"address"`
}

type RoomPatch struct {
	Name        patch.Optional[string] `json:"name"`
	CircuitType patch.Optional[string] `json:"circuit_type"`
	SiteID      patch.Optional[uint]   `json:"site_id"`
}

type DevicePatch struct {
	Name        patch.Optional[string]  `json:"name"`
	Description patch.Optional[string]  `json:"description"`
	Consumption patch.Optional[float64] `json:"consumption"`
	InstalledAt patch.Optional[Date]    `json:"installed_at"`
	RoomID      patch.Optional[uint]    `json:"room_id"`
	OwnerID     patch.Optional[uint]    `json:"owner_id"`
}

type OccupancyPatch struct {
	RoomID      patch.Optional[uint]  `json:"room_id"`
	PersonCount patch.Optional[int]   `json:"person_count"`
	Duration    patch.Optional[int64] `json:"duration"`
	Date        patch.Optional[Date]  `json:"date"`
}

type EnergyCostPatch struct {
	SiteID              patch.Optional[uint]    `json:"site_id"`
	Year                patch.Optional[int]     `json:"year"`
	Month               patch.Optional[int]     `json:"month"`
	BillingStart        patch.Optional[Date]    `json:"billing_start"`
	BillingEnd          patch.Optional[Date]    `json:"billing_end"`
	ActiveEnergyKWh     patch.Optional[float64] `json:"active_energy_kwh"`
	ReactiveEnergyKVArh patch.Optional[float64] `json:"reactive_energy_kvarh"`
	InvoiceAmount       patch.Optional[float64] `json:"invoice_amount"`
	Contract            patch.Optional[string]  `json:"contract"`
	TraineeCount        patch.Optional[int]     `json:"trainee_count"`
	StaffCount          patch.Optional[int]     `json:"staff_count"`
}

type SubstationPatch struct {
	Name         patch.Optional[string]  `json:"name"`
	SiteID       patch.Optional[uint]    `json:"site_id"`
	VoltageLevel patch.Optional[float64] `json:"voltage_level"`
}

// columns collects the column assignments of a patch.
type columns map[string]any

func setCol[T any](cols columns, name string, o patch.Optional[T]) {
	if o.HasValue() {
		cols[name] = *o.Value()
	}
}

func (p UserPatch) columns() columns {
	cols := columns{}
	setCol(cols, "first_name", p.FirstName)
	setCol(cols, "last_name", p.LastName)
	setCol(cols, "email", p.Email)
	setCol(cols, "password", p.Password)
	setCol(cols, "account_type", p.AccountType)
	return cols
}

func (p RegionPatch) columns() columns {
	cols := columns{}
	setCol(cols, "name", p.Name)
	return cols
}

func (p CenterPatch) columns() columns {
	cols := columns{}
	setCol(cols, "name", p.Name)
	setCol(cols, "city", p.City)
	setCol(cols, "region_id", p.RegionID)
	setCol(cols, "owner_id", p.OwnerID)
	return cols
}

func (p SitePatch) columns() columns {
	cols := columns{}
	setCol(cols, "name", p.Name)
	setCol(cols, "address", p.Address)
	return cols
}

func (p RoomPatch) columns() columns {
	cols := columns{}
	setCol(cols, "name", p.Name)
	setCol(cols, "circuit_type", p.CircuitType)
	setCol(cols, "site_id", p.SiteID)
	return cols
}

func (p DevicePatch) columns() columns {
	cols := columns{}
	setCol(cols, "name", p.Name)
	setCol(cols, "description", p.Description)
	setCol(cols, "consumption", p.Consumption)
	setCol(cols, "installed_at", p.InstalledAt)
	setCol(cols, "room_id", p.RoomID)
	setCol(cols, "owner_id", p.OwnerID)
	return cols
}

func (p OccupancyPatch) columns() columns {
	cols := columns{}
	setCol(cols, "room_id", p.RoomID)
	setCol(cols, "person_count", p.PersonCount)
	setCol(cols, "duration_seconds", p.Duration)
	setCol(cols, "date", p.Date)
	return cols
}

func (p EnergyCostPatch) columns() columns {
	cols := columns{}
	setCol(cols, "site_id", p.SiteID)
	setCol(cols, "year", p.Year)
	setCol(cols, "month", p.Month)
	setCol(cols, "billing_start", p.BillingStart)
	setCol(cols, "billing_end", p.BillingEnd)
	setCol(cols, "active_energy_kwh", p.ActiveEnergyKWh)
	setCol(cols, "reactive_energy_kvarh", p.ReactiveEnergyKVArh)
	setCol(cols, "invoice_amount", p.InvoiceAmount)
	setCol(cols, "contract", p.Contract)
	setCol(cols, "trainee_count", p.TraineeCount)
	setCol(cols, "staff_count", p.StaffCount)
	return cols
}

func (p SubstationPatch) columns() columns {
	cols := columns{}
	setCol(cols, "name", p.Name)
	setCol(cols, "site_id", p.SiteID)
	setCol(cols, "voltage_level_kva", p.VoltageLevel)
	return cols
}
