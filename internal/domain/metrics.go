package domain

// Rating classifies a unit's size against review thresholds.
type Rating string

const (
	RatingGood     Rating = "good"
	RatingWarning  Rating = "warning"
	RatingCritical Rating = "critical"
)

// Line-span thresholds for SizeRating. An undocumented unit above the
// warning threshold is the costliest kind to leave unexplained.
const (
	LOCWarning  = 50
	LOCCritical = 100
)

// SizeRating classifies the unit's line span.
func (u Unit) SizeRating() Rating {
	switch loc := u.LOC(); {
	case loc >= LOCCritical:
		return RatingCritical
	case loc >= LOCWarning:
		return RatingWarning
	}
	return RatingGood
}

// Health buckets the coverage percentage into a verdict for humans:
// 80% and up is Healthy, 50% and up Needs Attention, below that
// Critical.
func (r Report) Health() string {
	switch p := r.Percent(); {
	case p >= 80:
		return "Healthy"
	case p >= 50:
		return "Needs Attention"
	}
	return "Critical"
}
