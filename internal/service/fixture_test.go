package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/noah-isme/myclassprogress/internal/repository"
	"github.com/noah-isme/myclassprogress/internal/store"
)

var testNow = time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

// newDemoStore returns a store seeded with the demo school, a fixed clock and
// predictable ids.
func newDemoStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	n := 0
	base := []store.Option{
		store.WithClock(func() time.Time { return testNow }),
		store.WithIDGenerator(func(prefix string) string {
			n++
			return fmt.Sprintf("%s-test-%03d", prefix, n)
		}),
	}
	return store.New(context.Background(), repository.NewMemoryBackend(0), nil, append(base, opts...)...)
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }
