package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withVars(t *testing.T, v, c, d string) {
	t.Helper()
	oldV, oldC, oldD, oldRead := Version, Commit, Date, readBuildInfo
	Version, Commit, Date = v, c, d
	t.Cleanup(func() {
		Version, Commit, Date, readBuildInfo = oldV, oldC, oldD, oldRead
	})
}

func TestFillFromModule(t *testing.T) {
	withVars(t, "dev", "none", "unknown")
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.3.1"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef0123"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			},
		}, true
	}

	fillFromModule()

	if Version != "v0.3.1" {
		t.Errorf("Version = %q, want v0.3.1", Version)
	}
	if Commit != "0123456789ab" {
		t.Errorf("Commit = %q, want 0123456789ab", Commit)
	}
	if Date != "2026-01-02T03:04:05Z" {
		t.Errorf("Date = %q", Date)
	}
}

func TestFillFromModuleKeepsLdflags(t *testing.T) {
	withVars(t, "v1.0.0", "abc123", "2025-12-20")
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main:     debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}},
		}, true
	}

	fillFromModule()

	if Version != "v1.0.0" || Commit != "abc123" || Date != "2025-12-20" {
		t.Errorf("ldflags values overwritten: %s %s %s", Version, Commit, Date)
	}
}

func TestTemplate(t *testing.T) {
	withVars(t, "v1.2.3", "abc", "today")

	got := Template()
	for _, want := range []string{"{{.Name}} version v1.2.3", "commit: abc", "built: today"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
	if !strings.Contains(String(), "version: v1.2.3") {
		t.Errorf("String() = %q", String())
	}
}
