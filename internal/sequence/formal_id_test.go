package sequence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	incr func(ctx context.Context, key string) (int64, error)
	keys []string
}

func (f *fakeCounter) Incr(ctx context.Context, key string) (int64, error) {
	f.keys = append(f.keys, key)
	return f.incr(ctx, key)
}

type fakeScanner struct {
	max func(ctx context.Context, day string) (int, error)
}

func (f *fakeScanner) MaxFormalSequence(ctx context.Context, day string) (int, error) {
	return f.max(ctx, day)
}

func fixedClock(s string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "TRR-20260601-007", Format("20260601", 7))
	assert.Equal(t, "TRR-20260601-123", Format("20260601", 123))
	// The width is a minimum, not a cap.
	assert.Equal(t, "TRR-20260601-1000", Format("20260601", 1000))
}

func TestNextPrefersCounter(t *testing.T) {
	counter := &fakeCounter{
		incr: func(ctx context.Context, key string) (int64, error) { return 7, nil },
	}
	scanner := &fakeScanner{
		max: func(ctx context.Context, day string) (int, error) {
			t.Fatal("store scan must not run when the counter answers")
			return 0, nil
		},
	}

	g := NewGenerator(counter, scanner, time.UTC)
	g.now = fixedClock("2026-06-01 10:00")

	id, err := g.Next(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "TRR-20260601-007", id)
	assert.Equal(t, []string{"resseq:20260601"}, counter.keys)
}

func TestNextFallsBackOnCounterError(t *testing.T) {
	counter := &fakeCounter{
		incr: func(ctx context.Context, key string) (int64, error) {
			return 0, errors.New("connection refused")
		},
	}
	scanner := &fakeScanner{
		max: func(ctx context.Context, day string) (int, error) {
			assert.Equal(t, "20260601", day)
			return 12, nil
		},
	}

	g := NewGenerator(counter, scanner, time.UTC)
	g.now = fixedClock("2026-06-01 10:00")

	id, err := g.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TRR-20260601-013", id)
}

func TestNextWithoutCounter(t *testing.T) {
	scanner := &fakeScanner{
		max: func(ctx context.Context, day string) (int, error) { return 0, nil },
	}

	g := NewGenerator(nil, scanner, time.UTC)
	g.now = fixedClock("2026-06-01 10:00")

	id, err := g.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TRR-20260601-001", id)
}

func TestNextFromStore(t *testing.T) {
	counter := &fakeCounter{
		incr: func(ctx context.Context, key string) (int64, error) { return 1, nil },
	}
	scanner := &fakeScanner{
		max: func(ctx context.Context, day string) (int, error) { return 41, nil },
	}

	g := NewGenerator(counter, scanner, time.UTC)
	g.now = fixedClock("2026-06-01 10:00")

	// Collision recovery always consults the store, never the counter.
	id, err := g.NextFromStore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TRR-20260601-042", id)
	assert.Empty(t, counter.keys)
}

func TestNextFromStoreScanError(t *testing.T) {
	scanner := &fakeScanner{
		max: func(ctx context.Context, day string) (int, error) {
			return 0, errors.New("db down")
		},
	}

	g := NewGenerator(nil, scanner, time.UTC)
	g.now = fixedClock("2026-06-01 10:00")

	_, err := g.Next(context.Background())
	assert.Error(t, err)
}

func TestDayUsesResortTimezone(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	scanner := &fakeScanner{
		max: func(ctx context.Context, day string) (int, error) { return 0, nil },
	}

	g := NewGenerator(nil, scanner, manila)
	// 2026-06-01 22:00 UTC is already 2026-06-02 in Manila (UTC+8).
	g.now = fixedClock("2026-06-01 22:00")

	id, err := g.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TRR-20260602-001", id)
}
