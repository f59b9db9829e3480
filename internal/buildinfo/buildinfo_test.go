package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestShort(t *testing.T) {
	oldV, oldC, oldR := Version, Commit, readBuildInfo
	defer func() { Version, Commit, readBuildInfo = oldV, oldC, oldR }()

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}}, true
	}

	tests := []struct {
		version, commit, want string
	}{
		{"v1.0.0", "abc", "v1.0.0"},
		{"dev", "deadbeefcafe0000", "deadbeefcafe"},
		{"dev", "unknown", "0123456789ab"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Fatalf("Short() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}

	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
	Version, Commit = "", ""
	if got := Short(); got != "dev" {
		t.Fatalf("Short() = %q, want dev", got)
	}
}
