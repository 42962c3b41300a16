package toss

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	apperrors "github.com/louisbranch/cointoss/internal/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// ShardSize is the number of actors that share one generator in Simulate.
// It is fixed so that results depend only on the seed.
const ShardSize = 1 << 16

// Upper bounds imposed by the uint32 actor fields.
const (
	MaxPopulation = math.MaxUint32
	MaxTrials     = math.MaxUint32
)

const tracerName = "github.com/louisbranch/cointoss/internal/core/toss"

// Request configures a parallel simulation.
type Request struct {
	Population int
	Trials     int
	Seed       int64
	// Workers caps concurrent shards. Zero or less uses runtime.NumCPU().
	Workers int
	// Progress, when set, is called after each shard with the number of
	// actors finished so far. It may be called from several goroutines.
	Progress func(done, total int)
}

// Result is the outcome of Simulate.
type Result struct {
	Actors  []Actor
	Summary Summary
	Seed    int64
	Workers int
	Elapsed time.Duration
}

// Run tosses trialsPerActor coins for each of population actors, drawing
// from src in round-major order: every actor tosses once before any actor
// tosses a second time.
func Run(population, trialsPerActor int, src Source) ([]Actor, Summary, error) {
	if err := validate(population, trialsPerActor); err != nil {
		return nil, Summary{}, err
	}
	if src == nil {
		return nil, Summary{}, apperrors.Invalid(ErrMissingSource, "source", nil)
	}

	actors := newActors(population)
	play(actors, trialsPerActor, src)
	return actors, Summarize(actors), nil
}

// Simulate runs the population in parallel shards and folds the summary
// once every shard has finished.
func Simulate(ctx context.Context, req Request) (Result, error) {
	if err := validate(req.Population, req.Trials); err != nil {
		return Result{}, err
	}
	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "toss.Simulate", trace.WithAttributes(
		attribute.Int("cointoss.population", req.Population),
		attribute.Int("cointoss.trials", req.Trials),
		attribute.Int("cointoss.workers", workers),
		attribute.Int64("cointoss.seed", req.Seed),
	))
	defer span.End()

	start := time.Now()
	actors := newActors(req.Population)
	shards := (len(actors) + ShardSize - 1) / ShardSize
	partial := make([]Summary, shards)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for shard := 0; shard < shards; shard++ {
		if gctx.Err() != nil {
			break
		}
		lo := shard * ShardSize
		hi := min(lo+ShardSize, len(actors))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			part := actors[lo:hi]
			play(part, req.Trials, newStreamSource(req.Seed, uint64(shard)))
			partial[shard] = Summarize(part)
			n := done.Add(int64(len(part)))
			if req.Progress != nil {
				req.Progress(int(n), len(actors))
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "simulation aborted")
		return Result{}, err
	}

	var summary Summary
	for _, p := range partial {
		summary = summary.Merge(p)
	}
	span.SetAttributes(
		attribute.Int("cointoss.only_heads", summary.OnlyHeads),
		attribute.Int("cointoss.only_tails", summary.OnlyTails),
	)

	return Result{
		Actors:  actors,
		Summary: summary,
		Seed:    req.Seed,
		Workers: workers,
		Elapsed: time.Since(start),
	}, nil
}

func validate(population, trials int) error {
	if population <= 0 || int64(population) > MaxPopulation {
		return apperrors.Invalid(ErrInvalidPopulation, "population", population)
	}
	if trials < 0 || int64(trials) > MaxTrials {
		return apperrors.Invalid(ErrInvalidTrials, "trials", trials)
	}
	return nil
}

func newActors(n int) []Actor {
	actors := make([]Actor, n)
	for i := range actors {
		actors[i].ID = uint32(i)
	}
	return actors
}

func play(actors []Actor, trials int, src Source) {
	for round := 0; round < trials; round++ {
		for i := range actors {
			actors[i].Record(src.Toss())
		}
	}
}
