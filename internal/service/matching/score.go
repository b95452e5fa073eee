package matching

import (
	"math"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

// Factor weights. They sum to 1 and are fixed; tuning them is a product
// decision, not a per-request input.
const (
	weightFleet        = 0.25
	weightLocation     = 0.20
	weightCapabilities = 0.20
	weightAvailability = 0.15
	weightPerformance  = 0.15
	weightPricing      = 0.05
)

// factorWeights returns a fresh weights map for embedding in a MatchScore.
func factorWeights() map[string]float64 {
	return map[string]float64{
		"fleet":        weightFleet,
		"location":     weightLocation,
		"capabilities": weightCapabilities,
		"availability": weightAvailability,
		"performance":  weightPerformance,
		"pricing":      weightPricing,
	}
}

// cargoIndustries maps cargo types to the industry a haulier should have
// experience with. Deliberately small; unmapped cargo types get partial
// credit rather than an error.
var cargoIndustries = map[string]string{
	"automotive":  "automotive",
	"food":        "food",
	"electronics": "electronics",
	"furniture":   "furniture",
}

// fleetScore rates the haulier's fleet against the job's transport needs.
// An unavailable haulier zeroes the whole factor; the remaining weights
// within the factor are truck availability 0.4, weight capacity 0.3,
// dimension fit 0.2 and special equipment 0.2.
func fleetScore(job domain.JobRequirements, h domain.HaulierProfile) float64 {
	if !h.Availability.IsAvailable {
		return 0
	}

	score := 0.1
	if h.Fleet.AvailableTrucks > 0 {
		score = 0.4
	}

	if h.Fleet.MaxWeight >= job.Transport.Weight {
		score += 0.3
	} else {
		score += 0.1
	}

	// Width is intentionally not compared; see the dimension-fit note in
	// the package docs before "fixing" this.
	dims := job.Transport.Dimensions
	if h.Fleet.MaxLength >= dims.Length && h.Fleet.MaxHeight >= dims.Height {
		score += 0.2
	} else {
		score += 0.1
	}

	score += 0.2 * domain.CoveredFraction(job.Transport.SpecialRequirements, h.Fleet.SpecialEquipment)

	return clamp01(score)
}

// locationScore rates geographic coverage: country coverage 0.4, specific
// route coverage 0.3, distance from route 0.3 (placeholder scorer).
func locationScore(job domain.JobRequirements, h domain.HaulierProfile, distance RouteDistanceScoreFunc) float64 {
	score := 0.4 * domain.CoveredFraction(job.Route.Countries, h.OperatingRegions.Countries)

	routeShare := 0.3
	switch {
	case len(h.OperatingRegions.SpecificRoutes) == 0:
		// No route list at all is neutral, not a miss.
		routeShare = 0.5
	case domain.Contains(h.OperatingRegions.SpecificRoutes, job.RouteKey()):
		routeShare = 1.0
	}
	score += 0.3 * routeShare

	score += 0.3 * distance(job, h)

	return clamp01(score)
}

// capabilitiesScore rates cargo type 0.3, certifications 0.3, languages 0.2
// and industry experience 0.2.
func capabilitiesScore(job domain.JobRequirements, h domain.HaulierProfile) float64 {
	cargoShare := 0.5
	if domain.Contains(h.Capabilities.CargoTypes, job.Transport.CargoType) {
		cargoShare = 1.0
	}
	score := 0.3 * cargoShare

	score += 0.3 * domain.CoveredFraction(job.HaulierRequirements.RequiredCertifications, h.Capabilities.Certifications)
	score += 0.2 * domain.CoveredFraction(job.HaulierRequirements.RequiredLanguages, h.Capabilities.Languages)

	industryShare := 0.5
	if industry, ok := cargoIndustries[job.Transport.CargoType]; ok {
		if domain.Contains(h.Capabilities.Industries, industry) {
			industryShare = 1.0
		}
	}
	score += 0.2 * industryShare

	return clamp01(score)
}

// availabilityScore rates working-day overlap 0.4, working-hours overlap
// 0.3 (placeholder scorer) and emergency readiness 0.3 when the job is
// strict and the haulier takes emergency work.
func availabilityScore(job domain.JobRequirements, h domain.HaulierProfile, hours WorkingHoursScoreFunc) float64 {
	score := 0.4 * domain.CoveredFraction(job.Timing.WorkingDays, h.Availability.WorkingDays)
	score += 0.3 * hours(job, h)
	if job.Timing.Flexibility == domain.FlexibilityStrict && h.Availability.EmergencyAvailable {
		score += 0.3
	}
	return clamp01(score)
}

// experienceJobsPerYear converts the forwarder's minimum-experience years
// into a completed-jobs floor.
const experienceJobsPerYear = 10

// performanceScore rates the track record: rating threshold 0.4, experience
// 0.3, on-time delivery 0.3.
func performanceScore(job domain.JobRequirements, h domain.HaulierProfile) float64 {
	score := 0.0
	if h.Performance.Rating >= job.HaulierRequirements.MinRating {
		score += 0.4
	}
	if h.Performance.TotalJobs >= job.HaulierRequirements.MinExperience*experienceJobsPerYear {
		score += 0.3
	}
	if h.Performance.OnTimeDelivery >= 90 {
		score += 0.3
	}
	return clamp01(score)
}

// pricingScore rates the cost estimate against the budget (0.6 within
// budget, 0.3 within 10% over) plus 0.4 for a matching currency.
func pricingScore(job domain.JobRequirements, h domain.HaulierProfile) float64 {
	score := 0.0
	cost := EstimateJobCost(job, h)
	switch {
	case cost <= job.Budget.MaxBudget:
		score += 0.6
	case cost <= job.Budget.MaxBudget*1.1:
		score += 0.3
	}
	if h.Pricing.Currency == job.Budget.Currency {
		score += 0.4
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// round2 rounds to two decimal places; applied once, to the weighted sum.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
