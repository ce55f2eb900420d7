// Package tui holds terminal-environment detection helpers used to
// decide whether interactive prompts and spinners should run.
package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables that indicate a CI/CD environment.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// IsInteractive determines if the current environment supports
// interactive prompts. It returns false when stdout is not a terminal
// (redirected to a file or pipe) or when running under CI, so prompts
// are skipped automatically in non-interactive contexts.
func IsInteractive() bool {
	if !IsTTY() {
		return false
	}

	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}

	return true
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
