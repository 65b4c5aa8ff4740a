package report

import (
	"fmt"
	"strconv"
)

// formatFloat renders a statistic with three decimal places, enough to read
// effect sizes without drowning the report in digits.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// formatP renders a p-value. Very small values are shown as a bound because
// the exact tail mass below 1e-4 carries no practical information.
func formatP(p float64) string {
	if p < 0.0001 {
		return "<0.0001"
	}
	return strconv.FormatFloat(p, 'f', 4, 64)
}

// formatPercent renders a rate as a percentage with one decimal place.
func formatPercent(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', 1, 64) + "%"
}

// formatCI renders a confidence interval.
func formatCI(lo, hi float64) string {
	return fmt.Sprintf("[%s, %s]", formatFloat(lo), formatFloat(hi))
}

// confidenceLabel renders the confidence level implied by alpha, e.g. "95%".
func confidenceLabel(alpha float64) string {
	return strconv.FormatFloat((1-alpha)*100, 'f', -1, 64) + "%"
}

// significanceMark renders whether a test cleared its significance level.
func significanceMark(significant bool) string {
	if significant {
		return "yes"
	}
	return "no"
}
