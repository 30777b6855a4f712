package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/khushikukreja26/MarketPulseAI/internal/model"
	"github.com/khushikukreja26/MarketPulseAI/pkg/insight"
	"github.com/khushikukreja26/MarketPulseAI/pkg/kpi"
)

type fakeProvider struct {
	records []kpi.Record
	err     error
}

func (f *fakeProvider) Fetch(ctx context.Context, orgID, timeframe string) ([]kpi.Record, error) {
	return f.records, f.err
}

func (f *fakeProvider) Name() string {
	return "Fake"
}

type fakeStore struct {
	saved *model.Report
	err   error
}

func (f *fakeStore) SaveReport(report *model.Report) error {
	if f.err != nil {
		return f.err
	}
	f.saved = report
	return nil
}

type fakeNotifier struct {
	topic string
	title string
	body  string
	calls int
	err   error
}

func (f *fakeNotifier) Send(ctx context.Context, topic, title, body string) error {
	f.calls++
	f.topic = topic
	f.title = title
	f.body = body
	return f.err
}

func testRecords() []kpi.Record {
	return []kpi.Record{
		{Name: "Market Share", Value: 25.0, Change: 2.5},
		{Name: "Avg Price vs Competitor", Value: -3.2, Change: -1.1},
		{Name: "Campaigns Active", Value: 4, Change: 1.0},
	}
}

func newTestComposer(provider kpi.Provider, store Store, notifier *fakeNotifier) *Composer {
	return NewComposer(provider, insight.NewGenerator(nil), store, notifier)
}

func TestCompose_Success(t *testing.T) {
	provider := &fakeProvider{records: testRecords()}
	store := &fakeStore{}
	notifier := &fakeNotifier{}

	c := newTestComposer(provider, store, notifier)

	doc, err := c.Compose(context.Background(), "acme")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Weekly MarketPulse Report for org acme", doc.Title)
	assert.Equal(t, "acme", doc.OrgID)
	assert.Equal(t, 3, len(doc.KPIs))

	if doc.Insights.RiskScore < 0 || doc.Insights.RiskScore > 100 {
		t.Errorf("risk score out of range: %d", doc.Insights.RiskScore)
	}
	if doc.CreatedAt.IsZero() || doc.CreatedAt.Location() != time.UTC {
		t.Errorf("createdAt not a UTC timestamp: %v", doc.CreatedAt)
	}

	assert.NotEqual(t, nil, store.saved)
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "org_acme", notifier.topic)
	assert.Equal(t, notificationTitle, notifier.title)
	assert.Equal(t, notificationBody, notifier.body)
}

func TestCompose_NotifierFailureIgnored(t *testing.T) {
	provider := &fakeProvider{records: testRecords()}
	store := &fakeStore{}
	notifier := &fakeNotifier{err: errors.New("broker down")}

	c := newTestComposer(provider, store, notifier)

	doc, err := c.Compose(context.Background(), "acme")

	assert.Equal(t, nil, err)
	assert.NotEqual(t, nil, doc)
	assert.Equal(t, 1, notifier.calls)
}

func TestCompose_StoreFailureReturnsError(t *testing.T) {
	provider := &fakeProvider{records: testRecords()}
	store := &fakeStore{err: errors.New("DB down")}
	notifier := &fakeNotifier{}

	c := newTestComposer(provider, store, notifier)

	doc, err := c.Compose(context.Background(), "acme")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, nil, doc)
	assert.Equal(t, 0, notifier.calls)
}

func TestCompose_ProviderFailureDegradesToNoData(t *testing.T) {
	provider := &fakeProvider{err: errors.New("warehouse unreachable")}
	store := &fakeStore{}
	notifier := &fakeNotifier{}

	c := newTestComposer(provider, store, notifier)

	doc, err := c.Compose(context.Background(), "acme")

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(doc.KPIs))
	assert.Equal(t, 0, doc.Insights.RiskScore)
	assert.NotEqual(t, "", doc.Insights.Summary)
}
