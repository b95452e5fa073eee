package domain

import "time"

// Flexibility represents how strict the pickup/delivery window of a job is.
type Flexibility string

// Known flexibility values.
const (
	FlexibilityStrict       Flexibility = "strict"
	FlexibilityFlexible     Flexibility = "flexible"
	FlexibilityVeryFlexible Flexibility = "very_flexible"
)

// Valid reports whether f is a known flexibility value.
func (f Flexibility) Valid() bool {
	switch f {
	case FlexibilityStrict, FlexibilityFlexible, FlexibilityVeryFlexible:
		return true
	}
	return false
}

// Dimensions of the cargo in metres.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transport describes what has to be moved. Weight is in tons.
type Transport struct {
	CargoType            string     `json:"cargo_type"`
	Weight               float64    `json:"weight"`
	Dimensions           Dimensions `json:"dimensions"`
	SpecialRequirements  []string   `json:"special_requirements"`
	HandlingRequirements []string   `json:"handling_requirements"`
}

// Route describes the job's itinerary. Distance is in kilometres,
// EstimatedDuration in hours.
type Route struct {
	PickupLocation    string   `json:"pickup_location"`
	DeliveryLocation  string   `json:"delivery_location"`
	Countries         []string `json:"countries"`
	Distance          float64  `json:"distance"`
	EstimatedDuration float64  `json:"estimated_duration"`
}

// Timing describes when the job has to happen.
type Timing struct {
	PickupDate   time.Time   `json:"pickup_date"`
	DeliveryDate time.Time   `json:"delivery_date"`
	Flexibility  Flexibility `json:"flexibility"`
	WorkingDays  []string    `json:"working_days"`
}

// Budget describes how the job is paid. FuelSurcharge is a free-form tag,
// either "included" or a numeric fraction as a string.
type Budget struct {
	MaxBudget     float64 `json:"max_budget"`
	Currency      string  `json:"currency"`
	PaymentTerms  string  `json:"payment_terms"`
	FuelSurcharge string  `json:"fuel_surcharge"`
}

// HaulierRequirements are the forwarder's constraints on acceptable hauliers.
// MinExperience is in years, MaxDistanceFromRoute in kilometres.
type HaulierRequirements struct {
	MinRating              float64  `json:"min_rating"`
	MinExperience          int      `json:"min_experience"`
	RequiredCertifications []string `json:"required_certifications"`
	RequiredLanguages      []string `json:"required_languages"`
	PreferredCountries     []string `json:"preferred_countries"`
	MaxDistanceFromRoute   float64  `json:"max_distance_from_route"`
}

// JobRequirements is a normalized description of one transport need.
// Build one through NormalizeJobRequirements before matching.
type JobRequirements struct {
	JobID               string              `json:"job_id"`
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	ForwarderID         string              `json:"forwarder_id"`
	Transport           Transport           `json:"transport"`
	Route               Route               `json:"route"`
	Timing              Timing              `json:"timing"`
	Budget              Budget              `json:"budget"`
	HaulierRequirements HaulierRequirements `json:"haulier_requirements"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// RouteKey returns the "pickup-delivery" string the engine compares against
// a haulier's specific routes.
func (j JobRequirements) RouteKey() string {
	return j.Route.PickupLocation + "-" + j.Route.DeliveryLocation
}

// NewJobRequirements normalizes a partially populated job using the current
// time for the timestamp fields.
func NewJobRequirements(raw JobRequirements) JobRequirements {
	return NormalizeJobRequirements(raw, time.Now().UTC())
}

// NormalizeJobRequirements returns a fully populated copy of raw, following
// the same rules as NormalizeHaulierProfile: collections become empty
// slices, numbers are clamped, unknown flexibility falls back to flexible,
// a missing currency falls back to DefaultCurrency.
func NormalizeJobRequirements(raw JobRequirements, now time.Time) JobRequirements {
	j := raw

	j.Transport.Weight = clampMin(j.Transport.Weight, 0)
	j.Transport.Dimensions.Length = clampMin(j.Transport.Dimensions.Length, 0)
	j.Transport.Dimensions.Width = clampMin(j.Transport.Dimensions.Width, 0)
	j.Transport.Dimensions.Height = clampMin(j.Transport.Dimensions.Height, 0)
	j.Transport.SpecialRequirements = normalizeSet(j.Transport.SpecialRequirements)
	j.Transport.HandlingRequirements = normalizeSet(j.Transport.HandlingRequirements)

	j.Route.Countries = normalizeSet(j.Route.Countries)
	j.Route.Distance = clampMin(j.Route.Distance, 0)
	j.Route.EstimatedDuration = clampMin(j.Route.EstimatedDuration, 0)

	if !j.Timing.Flexibility.Valid() {
		j.Timing.Flexibility = FlexibilityFlexible
	}
	j.Timing.WorkingDays = normalizeSet(j.Timing.WorkingDays)

	j.Budget.MaxBudget = clampMin(j.Budget.MaxBudget, 0)
	if j.Budget.Currency == "" {
		j.Budget.Currency = DefaultCurrency
	}

	j.HaulierRequirements.MinRating = clampRange(j.HaulierRequirements.MinRating, 0, 5)
	j.HaulierRequirements.MinExperience = clampIntMin(j.HaulierRequirements.MinExperience, 0)
	j.HaulierRequirements.RequiredCertifications = normalizeSet(j.HaulierRequirements.RequiredCertifications)
	j.HaulierRequirements.RequiredLanguages = normalizeSet(j.HaulierRequirements.RequiredLanguages)
	j.HaulierRequirements.PreferredCountries = normalizeSet(j.HaulierRequirements.PreferredCountries)
	j.HaulierRequirements.MaxDistanceFromRoute = clampMin(j.HaulierRequirements.MaxDistanceFromRoute, 0)

	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.UpdatedAt = now

	return j
}
