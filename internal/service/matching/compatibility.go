package matching

import "github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"

// CompatibilityFor returns the coarse per-axis labels shown as UI badges.
// These are deliberately simpler judgments than the numeric sub-scores and
// must stay decoupled from them.
func CompatibilityFor(_ domain.JobRequirements, h domain.HaulierProfile) domain.Compatibility {
	c := domain.Compatibility{
		Fleet:       domain.CompatibilityPoor,
		Location:    domain.CompatibilityFair,
		Performance: domain.CompatibilityGood,
	}
	if h.Fleet.AvailableTrucks > 0 {
		c.Fleet = domain.CompatibilityExcellent
	}
	if len(h.OperatingRegions.Countries) > 0 {
		c.Location = domain.CompatibilityGood
	}
	if h.Performance.Rating > 4 {
		c.Performance = domain.CompatibilityExcellent
	}
	return c
}
