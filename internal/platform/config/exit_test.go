package config_test

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/cointoss/internal/platform/config"
	apperrors "github.com/louisbranch/cointoss/internal/platform/errors"
)

func TestExitErr_InvalidParameterExitsWithUsageCode(t *testing.T) {
	if os.Getenv("TEST_EXITERR_SUBPROCESS") == "1" {
		config.ExitErr(apperrors.Invalid(errors.New("population must be positive"), "population", 0))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitErr_InvalidParameterExitsWithUsageCode$")
	cmd.Env = append(os.Environ(), "TEST_EXITERR_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != config.ExitUsage {
		t.Fatalf("expected exit code %d, got %d", config.ExitUsage, exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "Error: population must be positive: population=0") {
		t.Fatalf("unexpected stderr %q", string(out))
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain", err: errors.New("boom"), want: config.ExitFailure},
		{name: "unknown code", err: apperrors.Wrap(apperrors.CodeUnknown, "compute", errors.New("trap")), want: config.ExitFailure},
		{name: "invalid parameter", err: apperrors.Invalid(errors.New("bad"), "trials", -1), want: config.ExitUsage},
		{name: "wrapped invalid parameter", err: fmt.Errorf("run: %w", apperrors.Invalid(errors.New("bad"), "trials", -1)), want: config.ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
