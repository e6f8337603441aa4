package manuscript

// Classification of a scored assessment.
const (
	ClassReject       = "reject"
	ClassInconclusive = "inconclusive"
	ClassValid        = "valid"
)

// ComputeManuscriptScore calculates a composite score (0.0-1.0).
//
// Formula: confidence * 0.40 + legible * 0.25 + steps * 0.20 + conclusion * 0.15
func ComputeManuscriptScore(a Assessment) float64 {
	confidenceScore := 0.4
	switch a.Confidence {
	case "high":
		confidenceScore = 1.0
	case "medium":
		confidenceScore = 0.7
	}

	score := confidenceScore * 0.40
	if a.Legible {
		score += 0.25
	}
	if a.StepsShown {
		score += 0.20
	}
	if a.ReachesAnswer {
		score += 0.15
	}
	return score
}

// ClassifyManuscript returns "reject" (< 0.50), "inconclusive" (0.50-0.70)
// or "valid" (> 0.70). Only valid manuscripts earn the full reward.
func ClassifyManuscript(score float64) string {
	if score < 0.50 {
		return ClassReject
	}
	if score <= 0.70 {
		return ClassInconclusive
	}
	return ClassValid
}
