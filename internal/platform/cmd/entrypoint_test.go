package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log"
	"testing"
	"time"
)

type testConfig struct {
	Population int    `env:"CMD_TEST_POPULATION" envDefault:"1000"`
	Mode       string `env:"CMD_TEST_MODE" envDefault:"simulate"`
}

func TestParseConfigAndArgsReadEnvAndFlags(t *testing.T) {
	t.Setenv("COINTOSS_CMD_TEST_POPULATION", "42")
	t.Setenv("COINTOSS_CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := parseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.IntVar(&cfgRef.Population, "population", cfgRef.Population, "population")
	fs.StringVar(&cfgRef.Mode, "mode", cfgRef.Mode, "mode")

	if err := parseArgs(fs, []string{"-population", "7"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Population != 7 {
		t.Fatalf("expected flag value for population, got %d", cfgRef.Population)
	}
	if cfgRef.Mode != "env-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
}

func TestParseConfigFromArgsBindsFlagsOverEnv(t *testing.T) {
	t.Setenv("COINTOSS_CMD_TEST_POPULATION", "9")
	t.Setenv("COINTOSS_CMD_TEST_MODE", "configarg-mode")

	var cfgRef testConfig
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	var defaultPopulation string
	err := ParseConfigFromArgs(&cfgRef, fs, []string{"-population", "11"}, func(fs *flag.FlagSet, cfg *testConfig) {
		fs.IntVar(&cfg.Population, "population", cfg.Population, "population")
		fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
		defaultPopulation = fs.Lookup("population").DefValue
	})
	if err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if defaultPopulation != "9" {
		t.Fatalf("expected flag default from env, got %q", defaultPopulation)
	}
	if cfgRef.Population != 11 {
		t.Fatalf("expected parsed flag population, got %d", cfgRef.Population)
	}
	if cfgRef.Mode != "configarg-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
}

func TestParseConfigFromArgsStopsOnEnvError(t *testing.T) {
	t.Setenv("COINTOSS_CMD_TEST_POPULATION", "lots")

	var cfgRef testConfig
	bound := false
	err := ParseConfigFromArgs(&cfgRef, flag.NewFlagSet("bad", flag.ContinueOnError), nil, func(*flag.FlagSet, *testConfig) {
		bound = true
	})
	if err == nil {
		t.Fatal("expected env parse error")
	}
	if bound {
		t.Fatal("expected flags not to be bound after env error")
	}
}

func TestParseConfigNilTarget(t *testing.T) {
	if err := parseConfig[testConfig](nil); err == nil {
		t.Fatal("expected parse config to reject nil target")
	}
}

func TestParseArgsNilParser(t *testing.T) {
	if err := parseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetryAndOptions(context.Background(), "", RunOptions{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetryAndOptions(context.Background(), ServiceSimulate, RunOptions{}, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryPropagatesRunError(t *testing.T) {
	t.Setenv("COINTOSS_OTEL_ENDPOINT", "")
	want := errors.New("boom")

	err := RunWithTelemetryAndOptions(context.Background(), ServiceStreak, RunOptions{}, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetryAndOptions() error = %v, want %v", err, want)
	}
}

func TestRunWithTelemetryAppliesTimeout(t *testing.T) {
	t.Setenv("COINTOSS_OTEL_ENDPOINT", "")
	var buf bytes.Buffer

	err := RunWithTelemetryAndOptions(context.Background(), ServiceSimulate, RunOptions{
		Timeout: time.Millisecond,
		Logger:  log.New(&buf, "", 0),
	}, func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("expected run context deadline")
		}
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}

func TestRunWithTelemetryWithoutTimeoutHasNoDeadline(t *testing.T) {
	t.Setenv("COINTOSS_OTEL_ENDPOINT", "")

	err := RunWithTelemetryAndOptions(context.Background(), ServiceStreak, RunOptions{}, func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); ok {
			t.Fatal("expected no deadline")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
