// Package streak implements the streak command: print the exact probability
// that at least one player in a population tosses an unbroken streak.
package streak

import (
	"context"
	"flag"
	"io"
	"iter"
	"log"
	"time"

	"github.com/louisbranch/cointoss/internal/core/streak"
	entrypoint "github.com/louisbranch/cointoss/internal/platform/cmd"
	apperrors "github.com/louisbranch/cointoss/internal/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const tracerName = "github.com/louisbranch/cointoss/internal/cmd/streak"

// rangeSeparator is printed between consecutive trial ranges.
const rangeSeparator = "....."

// Config holds streak command configuration.
type Config struct {
	Population int64         `env:"STREAK_POPULATION" envDefault:"300000000"`
	Trials     string        `env:"STREAK_TRIALS" envDefault:"18-39,361-367"`
	Precision  int           `env:"STREAK_PRECISION" envDefault:"110"`
	Places     int           `env:"STREAK_PLACES" envDefault:"100"`
	Either     bool          `env:"STREAK_EITHER"`
	Timeout    time.Duration `env:"STREAK_TIMEOUT"`
	Verbose    bool          `env:"STREAK_VERBOSE"`
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
	fs.Int64Var(&cfg.Population, "population", cfg.Population, "number of players")
	fs.StringVar(&cfg.Trials, "trials", cfg.Trials, "comma-separated inclusive toss ranges, e.g. 18-39,361-367")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "significant digits carried by the computation")
	fs.IntVar(&cfg.Places, "places", cfg.Places, "decimal places printed for each percentage")
	fs.BoolVar(&cfg.Either, "either", cfg.Either, "count streaks of only tails as well as only heads")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort the sweep after this long (0 = no limit)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log timing to stderr")
}

// Run executes the streak command under the shared telemetry entrypoint.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)
	options := entrypoint.RunOptions{Timeout: cfg.Timeout, Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceStreak, options, func(ctx context.Context) error {
		return run(ctx, cfg, out, logger)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	ranges, err := streak.ParseRanges(cfg.Trials)
	if err != nil {
		return err
	}
	if cfg.Places < 0 {
		return apperrors.Invalid(streak.ErrInvalidPlaces, "places", cfg.Places)
	}
	req := streak.CurveRequest{
		Population: cfg.Population,
		Ranges:     ranges,
		Precision:  cfg.Precision,
		Direction:  direction(cfg.Either),
	}
	points, err := streak.Curve(req)
	if err != nil {
		return err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "streak.Sweep", trace.WithAttributes(
		attribute.Int64("cointoss.population", req.Population),
		attribute.String("cointoss.trials", cfg.Trials),
		attribute.Int("cointoss.precision", req.Precision),
		attribute.String("cointoss.direction", req.Direction.String()),
	))
	defer span.End()

	start := time.Now()
	if err := printCurve(ctx, out, points, ranges, cfg.Places, req.Direction); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sweep aborted")
		return err
	}
	if cfg.Verbose {
		logger.Printf("computed %d points at %d digits in %s", req.Points(), req.Precision, time.Since(start))
	}
	return nil
}

func direction(either bool) streak.Direction {
	if either {
		return streak.EitherSide
	}
	return streak.OneSide
}

// printCurve writes one line per point, separating ranges with
// rangeSeparator. Cancellation is checked between points.
func printCurve(ctx context.Context, out io.Writer, points iter.Seq2[streak.Point, error], ranges []streak.Range, places int, dir streak.Direction) error {
	p := message.NewPrinter(language.English)
	subject := "only heads"
	if dir == streak.EitherSide {
		subject = "only heads or only tails"
	}
	if _, err := p.Fprintf(out, "Probability that at least one player tosses %s:\n", subject); err != nil {
		return err
	}

	rangeIdx := 0
	left := ranges[0].Len()
	for point, err := range points {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if left == 0 {
			rangeIdx++
			left = ranges[rangeIdx].Len()
			if _, err := p.Fprintln(out, rangeSeparator); err != nil {
				return err
			}
		}
		left--

		pct, err := point.Percent(places)
		if err != nil {
			return err
		}
		if _, err := p.Fprintf(out, "%d players and %d tosses: %s %%\n", point.Population, point.Trials, pct); err != nil {
			return err
		}
	}
	return nil
}
