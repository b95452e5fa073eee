package domain

import "time"

// DefaultLanguage is assumed for hauliers that did not list any working language.
const DefaultLanguage = "en"

// DefaultCurrency is assumed for records without an explicit currency code.
const DefaultCurrency = "DKK"

// Fleet describes the trucks and trailers a haulier operates.
type Fleet struct {
	TotalTrucks      int      `json:"total_trucks"`
	AvailableTrucks  int      `json:"available_trucks"`
	TruckTypes       []string `json:"truck_types"`
	TrailerTypes     []string `json:"trailer_types"`
	MaxWeight        float64  `json:"max_weight"`
	MaxLength        float64  `json:"max_length"`
	MaxHeight        float64  `json:"max_height"`
	SpecialEquipment []string `json:"special_equipment"`
}

// OperatingRegions describes where a haulier takes jobs. Specific routes are
// stored as "origin-destination" strings.
type OperatingRegions struct {
	Countries      []string `json:"countries"`
	Regions        []string `json:"regions"`
	SpecificRoutes []string `json:"specific_routes"`
}

// Capabilities lists what kinds of cargo and customers a haulier can serve.
type Capabilities struct {
	CargoTypes     []string `json:"cargo_types"`
	Industries     []string `json:"industries"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
}

// WorkingHours is a daily HH:MM interval.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability describes when a haulier can take new work.
type Availability struct {
	IsAvailable        bool         `json:"is_available"`
	AvailableTrucks    int          `json:"available_trucks"`
	WorkingDays        []string     `json:"working_days"`
	WorkingHours       WorkingHours `json:"working_hours"`
	EmergencyAvailable bool         `json:"emergency_available"`
	WeekendWork        bool         `json:"weekend_work"`
}

// Performance holds a haulier's track record. Rating is on a 0-5 scale,
// OnTimeDelivery and CustomerSatisfaction are percentages.
type Performance struct {
	Rating               float64 `json:"rating"`
	TotalJobs            int     `json:"total_jobs"`
	CompletedJobs        int     `json:"completed_jobs"`
	OnTimeDelivery       float64 `json:"on_time_delivery"`
	CustomerSatisfaction float64 `json:"customer_satisfaction"`
}

// Pricing holds a haulier's rate card. BaseRate is per kilometre in Currency,
// FuelSurcharge is a 0-1 fraction.
type Pricing struct {
	BaseRate      float64 `json:"base_rate"`
	Currency      string  `json:"currency"`
	FuelSurcharge float64 `json:"fuel_surcharge"`
	TollIncluded  bool    `json:"toll_included"`
}

// HaulierProfile is a normalized description of a transport provider.
// Build one through NormalizeHaulierProfile before handing it to the
// matching engine; the engine assumes every field is populated.
type HaulierProfile struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Company          string           `json:"company"`
	Fleet            Fleet            `json:"fleet"`
	OperatingRegions OperatingRegions `json:"operating_regions"`
	Capabilities     Capabilities     `json:"capabilities"`
	Availability     Availability     `json:"availability"`
	Performance      Performance      `json:"performance"`
	Pricing          Pricing          `json:"pricing"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	LastActive       time.Time        `json:"last_active"`
}

// NewHaulierProfile normalizes a partially populated profile using the
// current time for the timestamp fields.
func NewHaulierProfile(raw HaulierProfile) HaulierProfile {
	return NormalizeHaulierProfile(raw, time.Now().UTC())
}

// NormalizeHaulierProfile returns a fully populated copy of raw. Missing
// collections become empty (never nil), out-of-range numeric fields are
// clamped to the documented bounds and timestamps are stamped from now.
// CreatedAt is preserved when already set. Normalizing an already
// normalized profile with the same now is a no-op.
func NormalizeHaulierProfile(raw HaulierProfile, now time.Time) HaulierProfile {
	p := raw

	p.Fleet.TotalTrucks = clampIntMin(p.Fleet.TotalTrucks, 0)
	p.Fleet.AvailableTrucks = clampIntMin(p.Fleet.AvailableTrucks, 0)
	if p.Fleet.AvailableTrucks > p.Fleet.TotalTrucks {
		p.Fleet.AvailableTrucks = p.Fleet.TotalTrucks
	}
	p.Fleet.MaxWeight = clampMin(p.Fleet.MaxWeight, 0)
	p.Fleet.MaxLength = clampMin(p.Fleet.MaxLength, 0)
	p.Fleet.MaxHeight = clampMin(p.Fleet.MaxHeight, 0)
	p.Fleet.TruckTypes = normalizeSet(p.Fleet.TruckTypes)
	p.Fleet.TrailerTypes = normalizeSet(p.Fleet.TrailerTypes)
	p.Fleet.SpecialEquipment = normalizeSet(p.Fleet.SpecialEquipment)

	p.OperatingRegions.Countries = normalizeSet(p.OperatingRegions.Countries)
	p.OperatingRegions.Regions = normalizeSet(p.OperatingRegions.Regions)
	p.OperatingRegions.SpecificRoutes = normalizeSet(p.OperatingRegions.SpecificRoutes)

	p.Capabilities.CargoTypes = normalizeSet(p.Capabilities.CargoTypes)
	p.Capabilities.Industries = normalizeSet(p.Capabilities.Industries)
	p.Capabilities.Certifications = normalizeSet(p.Capabilities.Certifications)
	p.Capabilities.Languages = normalizeSet(p.Capabilities.Languages)
	if len(p.Capabilities.Languages) == 0 {
		p.Capabilities.Languages = []string{DefaultLanguage}
	}

	p.Availability.AvailableTrucks = clampIntMin(p.Availability.AvailableTrucks, 0)
	if p.Availability.AvailableTrucks > p.Fleet.TotalTrucks {
		p.Availability.AvailableTrucks = p.Fleet.TotalTrucks
	}
	p.Availability.WorkingDays = normalizeSet(p.Availability.WorkingDays)

	p.Performance.Rating = clampRange(p.Performance.Rating, 0, 5)
	p.Performance.TotalJobs = clampIntMin(p.Performance.TotalJobs, 0)
	p.Performance.CompletedJobs = clampIntMin(p.Performance.CompletedJobs, 0)
	p.Performance.OnTimeDelivery = clampRange(p.Performance.OnTimeDelivery, 0, 100)
	p.Performance.CustomerSatisfaction = clampRange(p.Performance.CustomerSatisfaction, 0, 100)

	p.Pricing.BaseRate = clampMin(p.Pricing.BaseRate, 0)
	p.Pricing.FuelSurcharge = clampRange(p.Pricing.FuelSurcharge, 0, 1)
	if p.Pricing.Currency == "" {
		p.Pricing.Currency = DefaultCurrency
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.LastActive = now

	return p
}
