package matching_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/matching"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// strongHaulier is a profile that scores well on every factor for testJob.
func strongHaulier() domain.HaulierProfile {
	return domain.NormalizeHaulierProfile(domain.HaulierProfile{
		ID:   "h-strong",
		Name: "Nordic Cargo",
		Fleet: domain.Fleet{
			TotalTrucks:      12,
			AvailableTrucks:  5,
			MaxWeight:        24,
			MaxLength:        13.6,
			MaxHeight:        3.0,
			SpecialEquipment: []string{"tail-lift", "straps"},
		},
		OperatingRegions: domain.OperatingRegions{
			Countries:      []string{"DK", "SE"},
			SpecificRoutes: []string{"Copenhagen-Stockholm"},
		},
		Capabilities: domain.Capabilities{
			CargoTypes:     []string{"electronics"},
			Industries:     []string{"electronics"},
			Certifications: []string{"ADR"},
			Languages:      []string{"en", "da"},
		},
		Availability: domain.Availability{
			IsAvailable:        true,
			AvailableTrucks:    5,
			WorkingDays:        []string{"mon", "tue", "wed", "thu", "fri"},
			EmergencyAvailable: true,
		},
		Performance: domain.Performance{
			Rating:         4.6,
			TotalJobs:      300,
			OnTimeDelivery: 95,
		},
		Pricing: domain.Pricing{BaseRate: 10, Currency: "DKK"},
	}, testNow)
}

func testJob() domain.JobRequirements {
	return domain.NormalizeJobRequirements(domain.JobRequirements{
		JobID:       "j1",
		ForwarderID: "f1",
		Transport: domain.Transport{
			CargoType: "electronics",
			Weight:    8,
			Dimensions: domain.Dimensions{
				Length: 10,
				Width:  2.4,
				Height: 2.6,
			},
			SpecialRequirements: []string{"tail-lift"},
		},
		Route: domain.Route{
			PickupLocation:   "Copenhagen",
			DeliveryLocation: "Stockholm",
			Countries:        []string{"DK", "SE"},
			Distance:         655,
		},
		Timing: domain.Timing{
			Flexibility: domain.FlexibilityStrict,
			WorkingDays: []string{"mon", "tue"},
		},
		Budget: domain.Budget{MaxBudget: 10000, Currency: "DKK"},
		HaulierRequirements: domain.HaulierRequirements{
			MinRating:              4,
			MinExperience:          2,
			RequiredCertifications: []string{"ADR"},
			RequiredLanguages:      []string{"en"},
		},
	}, testNow)
}

func TestScore_UnavailableHaulierZeroesFleet(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	h := strongHaulier()
	h.Availability.IsAvailable = false

	score := svc.Score(testJob(), h)
	assert.Zero(t, score.Breakdown.Fleet)
	// Other factors are unaffected by availability.
	assert.Greater(t, score.Breakdown.Capabilities, 0.0)
}

func TestScore_FleetPartialCredit(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob()
	// Half-covered equipment keeps the factor below the clamp ceiling.
	job.Transport.SpecialRequirements = []string{"tail-lift", "crane"}

	h := strongHaulier()
	full := svc.Score(job, h).Breakdown.Fleet

	h.Fleet.AvailableTrucks = 0
	h.Availability.AvailableTrucks = 0
	noTrucks := svc.Score(job, h).Breakdown.Fleet
	assert.InDelta(t, full-0.3, noTrucks, 1e-9)

	h = strongHaulier()
	h.Fleet.MaxWeight = 5
	lowWeight := svc.Score(job, h).Breakdown.Fleet
	assert.InDelta(t, full-0.2, lowWeight, 1e-9)
}

func TestScore_DimensionFitIgnoresWidth(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob()
	job.Transport.Dimensions.Width = 99

	h := strongHaulier()
	wide := svc.Score(job, h).Breakdown.Fleet

	job.Transport.Dimensions.Width = 2.4
	normal := svc.Score(job, h).Breakdown.Fleet

	assert.Equal(t, normal, wide)
}

func TestScore_DimensionMissReducesFleet(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob()
	job.Transport.SpecialRequirements = []string{"tail-lift", "crane"}
	h := strongHaulier()
	full := svc.Score(job, h).Breakdown.Fleet

	job.Transport.Dimensions.Height = 4.5
	tall := svc.Score(job, h).Breakdown.Fleet
	assert.InDelta(t, full-0.1, tall, 1e-9)
}

func TestScore_LocationRouteCoverage(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob()

	h := strongHaulier()
	onRoute := svc.Score(job, h).Breakdown.Location

	h.OperatingRegions.SpecificRoutes = []string{"Oslo-Bergen"}
	offRoute := svc.Score(job, h).Breakdown.Location
	assert.Greater(t, onRoute, offRoute)

	h.OperatingRegions.SpecificRoutes = []string{}
	noRoutes := svc.Score(job, h).Breakdown.Location
	// An empty route list is neutral: better than a miss, worse than a hit.
	assert.Greater(t, noRoutes, offRoute)
	assert.Less(t, noRoutes, onRoute)
}

func TestScore_LocationEmptyJobCountriesFullCredit(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob()
	job.Route.Countries = []string{}

	h := strongHaulier()
	h.OperatingRegions.Countries = []string{}
	h.OperatingRegions.SpecificRoutes = []string{"Copenhagen-Stockholm"}

	// 0.4*1.0 + 0.3*1.0 + 0.3*0.8
	assert.InDelta(t, 0.94, svc.Score(job, h).Breakdown.Location, 1e-9)
}

func TestScore_CapabilitiesUnknownCargoIsLenient(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob()
	job.Transport.CargoType = "livestock"

	h := strongHaulier()
	h.Capabilities.CargoTypes = []string{"livestock"}
	score := svc.Score(job, h).Breakdown.Capabilities

	// Cargo type matches fully but livestock has no industry mapping, so the
	// industry share stays at the lenient half credit.
	// 0.3*1.0 + 0.3*1.0 + 0.2*1.0 + 0.2*0.5
	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestScore_CapabilitiesIndustryMatch(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob()

	h := strongHaulier()
	withIndustry := svc.Score(job, h).Breakdown.Capabilities

	h.Capabilities.Industries = []string{"construction"}
	withoutIndustry := svc.Score(job, h).Breakdown.Capabilities
	assert.InDelta(t, 0.1, withIndustry-withoutIndustry, 1e-9)
}

func TestScore_AvailabilityEmergencyBonusOnlyWhenStrict(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	h := strongHaulier()

	strict := testJob()
	require.Equal(t, domain.FlexibilityStrict, strict.Timing.Flexibility)
	strictScore := svc.Score(strict, h).Breakdown.Availability

	relaxed := testJob()
	relaxed.Timing.Flexibility = domain.FlexibilityFlexible
	relaxedScore := svc.Score(relaxed, h).Breakdown.Availability

	assert.InDelta(t, 0.3, strictScore-relaxedScore, 1e-9)
}

func TestScore_PerformanceThresholds(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob()

	h := strongHaulier()
	assert.InDelta(t, 1.0, svc.Score(job, h).Breakdown.Performance, 1e-9)

	h.Performance.Rating = 3.9
	assert.InDelta(t, 0.6, svc.Score(job, h).Breakdown.Performance, 1e-9)

	h = strongHaulier()
	h.Performance.TotalJobs = 19 // below 2 years * 10 jobs
	assert.InDelta(t, 0.7, svc.Score(job, h).Breakdown.Performance, 1e-9)

	h = strongHaulier()
	h.Performance.OnTimeDelivery = 89.9
	assert.InDelta(t, 0.7, svc.Score(job, h).Breakdown.Performance, 1e-9)
}

func TestScore_PricingBudgetBands(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob() // distance 655, weight 8: cost = 655 * rate

	h := strongHaulier()
	h.Pricing.BaseRate = 10 // cost 6550, within budget 10000
	assert.InDelta(t, 1.0, svc.Score(job, h).Breakdown.Pricing, 1e-9)

	h.Pricing.BaseRate = 16 // cost 10480, within 10% over
	assert.InDelta(t, 0.7, svc.Score(job, h).Breakdown.Pricing, 1e-9)

	h.Pricing.BaseRate = 20 // cost 13100, way over
	assert.InDelta(t, 0.4, svc.Score(job, h).Breakdown.Pricing, 1e-9)

	h.Pricing.Currency = "EUR"
	assert.InDelta(t, 0.0, svc.Score(job, h).Breakdown.Pricing, 1e-9)
}

func TestEstimateJobCost_HeavyLoadSurcharge(t *testing.T) {
	t.Parallel()

	job := testJob()
	h := strongHaulier()
	h.Pricing.BaseRate = 10

	job.Transport.Weight = 8
	assert.InDelta(t, 6550.0, matching.EstimateJobCost(job, h), 1e-9)

	job.Transport.Weight = 12
	assert.InDelta(t, 7860.0, matching.EstimateJobCost(job, h), 1e-9)
}

func TestScore_TotalIsRoundedWeightedSum(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	job := testJob()
	h := strongHaulier()

	score := svc.Score(job, h)
	b := score.Breakdown
	want := b.Fleet*0.25 + b.Location*0.20 + b.Capabilities*0.20 +
		b.Availability*0.15 + b.Performance*0.15 + b.Pricing*0.05
	assert.InDelta(t, want, score.TotalScore, 0.005)
	assert.GreaterOrEqual(t, score.TotalScore, 0.0)
	assert.LessOrEqual(t, score.TotalScore, 1.0)
}

func TestScore_WeightsSumToOne(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil)
	score := svc.Score(testJob(), strongHaulier())

	sum := 0.0
	for _, w := range score.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Len(t, score.Weights, 6)
}

func TestScore_CustomScorersAreUsed(t *testing.T) {
	t.Parallel()

	svc := matching.NewService(nil, nil).
		WithRouteDistanceScorer(func(domain.JobRequirements, domain.HaulierProfile) float64 { return 0 }).
		WithWorkingHoursScorer(func(domain.JobRequirements, domain.HaulierProfile) float64 { return 0 })

	base := matching.NewService(nil, nil).Score(testJob(), strongHaulier())
	custom := svc.Score(testJob(), strongHaulier())

	assert.Less(t, custom.Breakdown.Location, base.Breakdown.Location)
	assert.Less(t, custom.Breakdown.Availability, base.Breakdown.Availability)
}
