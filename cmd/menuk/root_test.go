// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-08-25T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2026-08-25T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev when no build info", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		// In test binaries, debug.ReadBuildInfo() returns Main.Version ==
		// "(devel)", so the function falls through to the final fallback.
		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

// newFlagCommand builds a scratch command carrying the launch flags, the
// way the root command does.
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "scratch"}
	addLaunchFlags(cmd)
	return cmd
}

func TestOverridesFromFlags_UnsetFlagsStayNil(t *testing.T) {
	cmd := newFlagCommand()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	ov := overridesFromFlags(cmd)
	if ov.Numbered != nil || ov.AdHoc != nil || ov.Separator != nil ||
		ov.Shell != nil || ov.Runtime != nil || ov.SelectorCommand != nil ||
		ov.Backend != nil || ov.Multi != nil || ov.Verbose != nil {
		t.Errorf("overridesFromFlags() = %+v, want all nil", ov)
	}
}

func TestOverridesFromFlags_SetFlagsForward(t *testing.T) {
	cmd := newFlagCommand()
	args := []string{
		"--numbered",
		"--ad-hoc",
		"--separator", ": ",
		"--shell", "bash",
		"--runtime", "virtual",
		"--selector", "rofi",
		"--backend", "builtin",
		"--multi",
		"--verbose",
	}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	ov := overridesFromFlags(cmd)
	if ov.Numbered == nil || !*ov.Numbered {
		t.Error("Numbered override not forwarded")
	}
	if ov.AdHoc == nil || !*ov.AdHoc {
		t.Error("AdHoc override not forwarded")
	}
	if ov.Separator == nil || *ov.Separator != ": " {
		t.Errorf("Separator override = %v, want \": \"", ov.Separator)
	}
	if ov.Shell == nil || *ov.Shell != "bash" {
		t.Errorf("Shell override = %v, want bash", ov.Shell)
	}
	if ov.Runtime == nil || *ov.Runtime != "virtual" {
		t.Errorf("Runtime override = %v, want virtual", ov.Runtime)
	}
	if ov.SelectorCommand == nil || *ov.SelectorCommand != "rofi" {
		t.Errorf("SelectorCommand override = %v, want rofi", ov.SelectorCommand)
	}
	if ov.Backend == nil || *ov.Backend != "builtin" {
		t.Errorf("Backend override = %v, want builtin", ov.Backend)
	}
	if ov.Multi == nil || !*ov.Multi {
		t.Error("Multi override not forwarded")
	}
	if ov.Verbose == nil || !*ov.Verbose {
		t.Error("Verbose override not forwarded")
	}
}

func TestOverridesFromFlags_ExplicitFalseIsAnOverride(t *testing.T) {
	cmd := newFlagCommand()
	if err := cmd.ParseFlags([]string{"--numbered=false"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	ov := overridesFromFlags(cmd)
	if ov.Numbered == nil {
		t.Fatal("Numbered override = nil, want explicit false")
	}
	if *ov.Numbered {
		t.Error("Numbered override = true, want false")
	}
}
