package kpi

import (
	"context"
	"reflect"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestStaticFetch(t *testing.T) {
	p := NewStaticProvider()

	records, err := p.Fetch(context.Background(), "acme", "weekly")

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(records))
	assert.Equal(t, "Market Share", records[0].Name)
	assert.Equal(t, 25.0, records[0].Value)
	assert.Equal(t, 2.5, records[0].Change)
}

func TestStaticFetch_InputIndependent(t *testing.T) {
	p := NewStaticProvider()

	first, _ := p.Fetch(context.Background(), "acme", "weekly")
	second, _ := p.Fetch(context.Background(), "globex", "monthly")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("static provider output varies with input: %+v vs %+v", first, second)
	}
}
