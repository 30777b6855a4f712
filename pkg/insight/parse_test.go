package insight

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"summary":"test"}`,
			want:  `{"summary":"test"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"summary\":\"test\"}\n```",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"summary\":\"test\"}\n```",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "extracts object from surrounding prose",
			input: "Here is the analysis:\n{\"summary\":\"test\"}\nLet me know if you need more.",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "no braces returns trimmed text",
			input: "  not json at all  ",
			want:  "not json at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseInsight_WellFormed(t *testing.T) {
	got, err := parseInsight(`{
		"summary": "  Competitor is gaining ground. ",
		"recommendations": ["Do A", " Do B ", ""],
		"risk_score": 72
	}`)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Competitor is gaining ground.", got.Summary)
	assert.Equal(t, []string{"Do A", "Do B"}, got.Recommendations)
	assert.Equal(t, 72, got.RiskScore)
}

func TestParseInsight_SingleRecommendationWrapped(t *testing.T) {
	got, err := parseInsight(`{"summary":"s","recommendations":"Just one thing","risk_score":10}`)

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"Just one thing"}, got.Recommendations)
}

func TestParseInsight_RiskScoreCoercion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "string risk parsed", input: `{"summary":"s","risk_score":"65"}`, want: 65},
		{name: "missing risk defaults to 50", input: `{"summary":"s"}`, want: 50},
		{name: "unparseable risk defaults to 50", input: `{"summary":"s","risk_score":"high"}`, want: 50},
		{name: "risk clamped high", input: `{"summary":"s","risk_score":250}`, want: 100},
		{name: "risk clamped low", input: `{"summary":"s","risk_score":-5}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInsight(tt.input)
			assert.Equal(t, nil, err)
			assert.Equal(t, tt.want, got.RiskScore)
		})
	}
}

func TestParseInsight_MissingFieldsDefaulted(t *testing.T) {
	got, err := parseInsight(`{}`)

	assert.Equal(t, nil, err)
	assert.Equal(t, "", got.Summary)
	assert.Equal(t, []string{}, got.Recommendations)
	assert.Equal(t, 50, got.RiskScore)
}

func TestParseInsight_NonJSON(t *testing.T) {
	_, err := parseInsight("I could not produce a structured answer, sorry.")

	assert.NotEqual(t, nil, err)
}
