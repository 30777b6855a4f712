package insight

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/go-playground/assert/v2"
)

type fakeModelClient struct {
	result *Insight
	err    error
	calls  int
}

func (f *fakeModelClient) GenerateInsights(ctx context.Context, kpis []KPIInput) (*Insight, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := *f.result
	return &result, f.err
}

func (f *fakeModelClient) Name() string {
	return "fake-model"
}

func TestGenerate_NoClientUsesRules(t *testing.T) {
	g := NewGenerator(nil)

	got, source := g.generate(context.Background(), sampleKPIs())

	assert.Equal(t, sourceRules, source)
	if !reflect.DeepEqual(got, RuleBased(sampleKPIs())) {
		t.Errorf("result differs from rule-based path: %+v", got)
	}
}

func TestGenerate_EmptyKPIsSkipsModel(t *testing.T) {
	client := &fakeModelClient{result: &Insight{Summary: "model"}}
	g := NewGenerator(client)

	got, source := g.generate(context.Background(), nil)

	assert.Equal(t, 0, client.calls)
	assert.Equal(t, sourceRules, source)
	assert.Equal(t, noDataSummary, got.Summary)
	assert.Equal(t, 0, got.RiskScore)
}

func TestGenerate_ModelErrorFallsBack(t *testing.T) {
	client := &fakeModelClient{err: errors.New("network down")}
	g := NewGenerator(client)

	got := g.Generate(context.Background(), sampleKPIs())

	assert.Equal(t, 1, client.calls)
	if !reflect.DeepEqual(got, RuleBased(sampleKPIs())) {
		t.Errorf("fallback result differs from rule-based path: %+v", got)
	}
}

func TestGenerate_ModelSuccess(t *testing.T) {
	client := &fakeModelClient{
		result: &Insight{
			Summary:         "Competitor momentum is building.",
			Recommendations: []string{"Do A", "Do B"},
			RiskScore:       64,
		},
	}
	g := NewGenerator(client)

	got, source := g.generate(context.Background(), sampleKPIs())

	assert.Equal(t, sourceModel, source)
	assert.Equal(t, "Competitor momentum is building.", got.Summary)
	assert.Equal(t, 64, got.RiskScore)
}

func TestGenerate_ModelRiskScoreClamped(t *testing.T) {
	client := &fakeModelClient{result: &Insight{Summary: "s", RiskScore: 400}}
	g := NewGenerator(client)

	got := g.Generate(context.Background(), sampleKPIs())

	assert.Equal(t, 100, got.RiskScore)
}
