package matching

import (
	"fmt"
	"strings"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

// MatchReasons returns a short ordered list of human-readable facts about
// the haulier. It is match evidence, not a trace of the score computation,
// and is generated independently of the sub-scores on purpose.
func MatchReasons(_ domain.JobRequirements, h domain.HaulierProfile) []string {
	reasons := make([]string, 0, 3)

	if h.Fleet.AvailableTrucks > 0 {
		reasons = append(reasons, fmt.Sprintf("%d trucks available", h.Fleet.AvailableTrucks))
	}
	if len(h.OperatingRegions.Countries) > 0 {
		reasons = append(reasons, "Operates in "+strings.Join(h.OperatingRegions.Countries, ", "))
	}
	if h.Performance.Rating > 4 {
		reasons = append(reasons, fmt.Sprintf("High rating: %.1f/5", h.Performance.Rating))
	}

	return reasons
}
