package tui

import "testing"

func TestIsInteractive_CI(t *testing.T) {
	t.Setenv("CI", "true")

	if IsInteractive() {
		t.Error("IsInteractive() = true under CI")
	}
}

func TestIsInteractive_MatchesTTY(t *testing.T) {
	// Under `go test` stdout is typically not a terminal; either way,
	// IsInteractive must never report true when IsTTY is false.
	if !IsTTY() && IsInteractive() {
		t.Error("IsInteractive() = true without a TTY")
	}
}
