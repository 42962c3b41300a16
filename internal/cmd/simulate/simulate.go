// Package simulate implements the simulate command: toss coins for a whole
// population and report how many actors never saw the other side.
package simulate

import (
	"context"
	"flag"
	"io"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/cointoss/internal/core/toss"
	entrypoint "github.com/louisbranch/cointoss/internal/platform/cmd"
	"github.com/louisbranch/cointoss/internal/random"
)

// Config holds simulate command configuration.
type Config struct {
	Population int           `env:"POPULATION" envDefault:"1000000"`
	Trials     int           `env:"TRIALS" envDefault:"20"`
	Seed       int64         `env:"SEED"`
	Workers    int           `env:"WORKERS"`
	ShowActors int           `env:"SHOW_ACTORS"`
	Timeout    time.Duration `env:"TIMEOUT"`
	Verbose    bool          `env:"VERBOSE"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Population, "population", cfg.Population, "number of actors tossing coins")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "coin tosses per actor")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent shards (0 = number of CPUs)")
	fs.IntVar(&cfg.ShowActors, "actors", cfg.ShowActors, "print per-actor results for the first N actors")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort the run after this long (0 = no limit)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log progress to stderr")
}

// Run executes the simulate command under the shared telemetry entrypoint.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)
	options := entrypoint.RunOptions{Timeout: cfg.Timeout, Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSimulate, options, func(ctx context.Context) error {
		return run(ctx, cfg, out, logger)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	seed, err := random.ResolveSeed(cfg.Seed)
	if err != nil {
		return err
	}

	req := toss.Request{
		Population: cfg.Population,
		Trials:     cfg.Trials,
		Seed:       seed,
		Workers:    cfg.Workers,
	}
	if cfg.Verbose {
		logger.Printf("simulating %d actors x %d tosses (seed %d)", cfg.Population, cfg.Trials, seed)
		req.Progress = progressLogger(logger)
	}

	res, err := toss.Simulate(ctx, req)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.Printf("finished on %d workers in %s", res.Workers, res.Elapsed)
	}

	r := newRenderer(out)
	if cfg.ShowActors > 0 {
		r.divider("Results by player")
		r.actors(res.Actors, cfg.ShowActors)
	}
	r.divider(r.p.Sprintf("Total Result with %d tosses", cfg.Trials))
	r.summary(res)
	return r.err
}

// progressLogger logs each time another tenth of the population finishes.
func progressLogger(logger *log.Logger) func(done, total int) {
	var (
		mu   sync.Mutex
		next = 10
	)
	return func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		pct := done * 100 / total
		if pct < next {
			return
		}
		logger.Printf("progress: %d%% (%d/%d actors)", pct, done, total)
		next = pct/10*10 + 10
	}
}
