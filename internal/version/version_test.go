package version

import "testing"

func TestInfoUsesLdflagsValues(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() {
		Version, Commit, Date = oldVersion, oldCommit, oldDate
	})

	Version, Commit, Date = "v1.2.0", "abc123", "2026-10-18"

	if got, want := Info(), "v1.2.0 (commit abc123, built 2026-10-18)"; got != want {
		t.Fatalf("Info() = %q, want %q", got, want)
	}
}

func TestInfoDefaultsToDev(t *testing.T) {
	if got, want := Info(), "dev (commit none, built unknown)"; got != want {
		t.Fatalf("Info() = %q, want %q", got, want)
	}
}
