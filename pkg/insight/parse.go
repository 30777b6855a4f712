package insight

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// parseInsight coerces a model response into a valid Insight. The model is
// asked for strict JSON but does not always comply: recommendations may come
// back as a single string and risk_score as a string or fraction.
func parseInsight(content string) (*Insight, error) {
	content = cleanJSONResponse(content)

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	result := &Insight{
		Summary:         strings.TrimSpace(asString(data["summary"])),
		Recommendations: []string{},
		RiskScore:       50,
	}

	switch recs := data["recommendations"].(type) {
	case []any:
		for _, r := range recs {
			if s := strings.TrimSpace(asString(r)); s != "" {
				result.Recommendations = append(result.Recommendations, s)
			}
		}
	case nil:
	default:
		if s := strings.TrimSpace(asString(recs)); s != "" {
			result.Recommendations = append(result.Recommendations, s)
		}
	}

	if risk, ok := asInt(data["risk_score"]); ok {
		result.RiskScore = risk
	}
	result.RiskScore = clampRisk(result.RiskScore)

	return result, nil
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		b, err := json.Marshal(s)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func clampRisk(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
