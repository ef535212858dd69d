package utils

// RubricTotal computes a judge's total as the mean of the five rubric values
func RubricTotal(innovation, technical, design, impact, presentation int) float64 {
	return float64(innovation+technical+design+impact+presentation) / 5.0
}

// Mean averages judge totals for a submission's displayed aggregate score.
// Returns 0 when no scores exist yet.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
