package config

import (
	"errors"
	"fmt"
	"os"

	apperrors "github.com/louisbranch/cointoss/internal/platform/errors"
)

// Exit codes used by cointoss commands.
const (
	ExitFailure = 1
	// ExitUsage matches the code the flag package uses for bad arguments.
	ExitUsage = 2
)

// ExitErr reports err on stderr and exits with the code ExitCode picks.
func ExitErr(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(ExitCode(err))
}

// ExitCode maps an error to a process exit code: invalid parameters are
// usage errors, everything else is a plain failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, apperrors.InvalidParameter) {
		return ExitUsage
	}
	return ExitFailure
}
