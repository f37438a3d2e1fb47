package sequence

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Formal reservation ids look like TRR-20250601-007: a per-day counter
// rendered behind the resort prefix. The counter is advisory; the unique
// index on the reservations table is the hard constraint, and callers
// retry with NextFromStore on a collision.

const (
	FormalIDPrefix = "TRR"
	dayFormat      = "20060102"
	counterPrefix  = "resseq:"
)

type CounterStore interface {
	Incr(ctx context.Context, key string) (int64, error)
}

type MaxScanner interface {
	MaxFormalSequence(ctx context.Context, day string) (int, error)
}

type Generator struct {
	counter CounterStore
	store   MaxScanner
	loc     *time.Location
	now     func() time.Time
}

func NewGenerator(counter CounterStore, store MaxScanner, loc *time.Location) *Generator {
	return &Generator{
		counter: counter,
		store:   store,
		loc:     loc,
		now:     time.Now,
	}
}

func (g *Generator) day() string {
	return g.now().In(g.loc).Format(dayFormat)
}

// Next returns the next formal id for today, preferring the Redis
// counter and falling back to a store scan when Redis is unavailable.
func (g *Generator) Next(ctx context.Context) (string, error) {
	day := g.day()

	if g.counter != nil {
		n, err := g.counter.Incr(ctx, counterPrefix+day)
		if err == nil {
			return Format(day, int(n)), nil
		}
		log.Printf("formal id counter unavailable, falling back to store scan: %v", err)
	}

	return g.nextFromStore(ctx, day)
}

// NextFromStore re-reads the max existing suffix for today and returns
// the increment. This is the collision-recovery path: the counter may
// have drifted behind rows written while Redis was down.
func (g *Generator) NextFromStore(ctx context.Context) (string, error) {
	return g.nextFromStore(ctx, g.day())
}

func (g *Generator) nextFromStore(ctx context.Context, day string) (string, error) {
	max, err := g.store.MaxFormalSequence(ctx, day)
	if err != nil {
		return "", err
	}
	return Format(day, max+1), nil
}

func Format(day string, n int) string {
	return fmt.Sprintf("%s-%s-%03d", FormalIDPrefix, day, n)
}
