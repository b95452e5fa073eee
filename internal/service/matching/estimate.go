package matching

import "github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"

// RouteDistanceScoreFunc scores how close a haulier's base is to the job
// route, in [0,1].
type RouteDistanceScoreFunc func(job domain.JobRequirements, h domain.HaulierProfile) float64

// WorkingHoursScoreFunc scores the overlap between the job's schedule and
// the haulier's working hours, in [0,1].
type WorkingHoursScoreFunc func(job domain.JobRequirements, h domain.HaulierProfile) float64

// EstimateRouteDistanceScore is the default RouteDistanceScoreFunc. It is a
// fixed constant until real geolocation is wired in; swap it via
// WithRouteDistanceScorer without touching the weighting structure.
func EstimateRouteDistanceScore(domain.JobRequirements, domain.HaulierProfile) float64 {
	return 0.8
}

// EstimateWorkingHoursScore is the default WorkingHoursScoreFunc, a fixed
// constant pending real interval math over the HH:MM windows.
func EstimateWorkingHoursScore(domain.JobRequirements, domain.HaulierProfile) float64 {
	return 0.8
}

// heavyLoadThresholdTons is the cargo weight above which the cost estimate
// applies a surcharge multiplier.
const heavyLoadThresholdTons = 10.0

// EstimateJobCost is a deterministic placeholder, not real geodesy:
// route distance times the haulier's per-km base rate, with a 20% bump for
// heavy loads.
func EstimateJobCost(job domain.JobRequirements, h domain.HaulierProfile) float64 {
	cost := job.Route.Distance * h.Pricing.BaseRate
	if job.Transport.Weight > heavyLoadThresholdTons {
		cost *= 1.2
	}
	return cost
}
