package database

// User is an account that can own centers and devices.
type User struct {
	ID          uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName   string      `json:"first_name" gorm:"type:varchar(255);not null"`
	LastName    string      `json:"last_name" gorm:"type:varchar(255);not null"`
	Email       string      `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password    string      `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash
	AccountType AccountType `json:"account_type" gorm:"type:varchar(32);not null;index"`
}

// Region is keyed by its external administrative code.
type Region struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

// Center belongs to a region and is owned by a user. Name is unique per region.
type Center struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:uq_center_name_region,priority:1"`
	City     string `json:"city" gorm:"type:varchar(255);not null;index"`
	RegionID string `json:"region_id" gorm:"type:varchar(64);not null;uniqueIndex:uq_center_name_region,priority:2"`
	OwnerID  uint   `json:"owner_id" gorm:"not null;index"`

	Region *Region `json:"-" gorm:"foreignKey:RegionID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Owner  *User   `json:"-" gorm:"foreignKey:OwnerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

type Site struct {
	ID      uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string  `json:"name" gorm:"type:varchar(255);not null;index"`
	Address *string `json:"address" gorm:"type:varchar(255)"`
}

// CenterSite links a site to a center.
type CenterSite struct {
	SiteID   uint `json:"site_id" gorm:"primaryKey;autoIncrement:false"`
	CenterID uint `json:"center_id" gorm:"primaryKey;autoIncrement:false;index"`

	Site   *Site   `json:"-" gorm:"foreignKey:SiteID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Center *Center `json:"-" gorm:"foreignKey:CenterID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

type Room struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        *string `json:"name" gorm:"type:varchar(255)"`
	CircuitType *string `json:"circuit_type" gorm:"type:varchar(255);index"`
	SiteID      uint    `json:"site_id" gorm:"not null;index"`

	Site *Site `json:"-" gorm:"foreignKey:SiteID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

type Device struct {
	ID          uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        *string  `json:"name" gorm:"type:varchar(255)"`
	Description *string  `json:"description" gorm:"type:text"`
	Consumption *float64 `json:"consumption"`
	InstalledAt *Date    `json:"installed_at" gorm:"index"`
	RoomID      uint     `json:"room_id" gorm:"not null;index"`
	OwnerID     *uint    `json:"owner_id" gorm:"index"`

	Room  *Room `json:"-" gorm:"foreignKey:RoomID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Owner *User `json:"-" gorm:"foreignKey:OwnerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// Occupancy is one observation of people present in a room.
type Occupancy struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	RoomID      uint   `json:"room_id" gorm:"not null;index:idx_occupancy_room_date,priority:1"`
	PersonCount *int   `json:"person_count"`
	Duration    *int64 `json:"duration" gorm:"column:duration_seconds"` // seconds
	Date        *Date  `json:"date" gorm:"index:idx_occupancy_room_date,priority:2"`

	Room *Room `json:"-" gorm:"foreignKey:RoomID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// EnergyCost is one billing record for a site.
type EnergyCost struct {
	ID                  uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	SiteID              uint     `json:"site_id" gorm:"not null;index"`
	Year                *int     `json:"year"`
	Month               *int     `json:"month"`
	BillingStart        *Date    `json:"billing_start" gorm:"index"`
	BillingEnd          *Date    `json:"billing_end"`
	ActiveEnergyKWh     *float64 `json:"active_energy_kwh" gorm:"column:active_energy_kwh"`
	ReactiveEnergyKVArh *float64 `json:"reactive_energy_kvarh" gorm:"column:reactive_energy_kvarh"`
	InvoiceAmount       *float64 `json:"invoice_amount"`
	Contract            *string  `json:"contract" gorm:"type:varchar(255)"`
	TraineeCount        *int     `json:"trainee_count"`
	StaffCount          *int     `json:"staff_count"`

	Site *Site `json:"-" gorm:"foreignKey:SiteID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

type Substation struct {
	ID           uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         *string  `json:"name" gorm:"type:varchar(255)"`
	SiteID       uint     `json:"site_id" gorm:"not null;index"`
	VoltageLevel *float64 `json:"voltage_level" gorm:"column:voltage_level_kva;index"` // kVA

	Site *Site `json:"-" gorm:"foreignKey:SiteID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// ConsumptionSummary aggregates the energy costs of every site linked to a
// region's centers.
type ConsumptionSummary struct {
	RegionID            string  `json:"region_id"`
	Records             int64   `json:"records"`
	ActiveEnergyKWh     float64 `json:"total_active_energy_kwh"`
	ReactiveEnergyKVArh float64 `json:"total_reactive_energy_kvarh"`
	InvoiceAmount       float64 `json:"total_invoice_amount"`
}

// models lists every table in dependency order for AutoMigrate.
func models() []any {
	return []any{
		&User{}, &Region{}, &Center{}, &Site{}, &CenterSite{},
		&Room{}, &Device{}, &Occupancy{}, &EnergyCost{}, &Substation{},
	}
}
