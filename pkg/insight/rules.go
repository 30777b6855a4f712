package insight

import (
	"fmt"
	"strings"
)

const noDataSummary = "No KPI data available for the selected period."

// RuleBased produces deterministic insights from the KPI deltas alone. It is
// the fallback used when no model is configured or the model path fails.
func RuleBased(kpis []KPIInput) Insight {
	if len(kpis) == 0 {
		return Insight{
			Summary: noDataSummary,
			Recommendations: []string{
				"Please ensure data collection is configured correctly.",
				"Verify that competitor signals are being tracked.",
			},
			RiskScore: 0,
		}
	}

	var positive, negative []string
	for _, k := range kpis {
		switch {
		case k.Change > 0:
			positive = append(positive, fmt.Sprintf("%s improved by %.2f points (current: %v).", k.Name, k.Change, k.Value))
		case k.Change < 0:
			negative = append(negative, fmt.Sprintf("%s declined by %.2f points (current: %v).", k.Name, -k.Change, k.Value))
		}
	}

	var summaryParts []string
	if len(positive) > 0 {
		summaryParts = append(summaryParts, "Strengths: "+strings.Join(positive, " "))
	}
	if len(negative) > 0 {
		summaryParts = append(summaryParts, "Weaknesses: "+strings.Join(negative, " "))
	}
	if len(summaryParts) == 0 {
		summaryParts = append(summaryParts, "KPI performance is stable with no significant changes.")
	}

	recommendations := []string{}
	if len(negative) > 0 {
		recommendations = append(recommendations,
			"Focus on improving the KPIs that declined. Consider targeted campaigns and pricing adjustments where performance dropped.")
	}
	if len(positive) > 0 {
		recommendations = append(recommendations,
			"Double down on areas where KPIs improved. Allocate more budget and resources to reinforce these strengths.")
	}

	return Insight{
		Summary:         strings.Join(summaryParts, " "),
		Recommendations: recommendations,
		RiskScore:       clampRisk(50 - 5*len(positive) + 10*len(negative)),
	}
}
