package insight

import (
	"encoding/json"
	"fmt"
)

const insightSystemPrompt = `You are a senior competitive strategy analyst for a SaaS company. You receive KPI metrics about competitor performance and must generate clear business insights for a product/marketing manager. Always respond with VALID JSON only.`

const insightPromptTemplate = `Here are the weekly competitor KPIs in JSON:

%s

Analyze these KPIs and respond ONLY in valid JSON with this exact structure:

{
  "summary": "2-4 sentences describing key strengths and weaknesses.",
  "recommendations": [
    "Actionable recommendation 1",
    "Actionable recommendation 2",
    "Actionable recommendation 3"
  ],
  "risk_score": 0
}

Rules:
- Do NOT include any extra commentary outside the JSON.
- "summary": short, executive-level explanation.
- "recommendations": 2-4 concrete, practical actions.
- "risk_score": integer 0 (no risk) to 100 (very high risk).`

func buildInsightPrompt(kpis []KPIInput) (string, error) {
	kpisJSON, err := json.MarshalIndent(kpis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize KPIs: %w", err)
	}
	return fmt.Sprintf(insightPromptTemplate, kpisJSON), nil
}
