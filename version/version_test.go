package version

import (
	"fmt"
	"testing"
)

func TestVersion(t *testing.T) {
	expected := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if got := Version(); got != expected {
		t.Errorf("Version: got %s, want %s", got, expected)
	}
}

func TestValidBuildMetadata(t *testing.T) {
	tests := []struct {
		build    string
		expected bool
	}{
		{"", false},
		{"dev", true},
		{"rc1", true},
		{"build-2026-08-26", true},
		{"build.1", false},
		{"under_score", false},
		{"space here", false},
	}

	for _, test := range tests {
		if got := validBuildMetadata(test.build); got != test.expected {
			t.Errorf("validBuildMetadata(%q): got %v, want %v",
				test.build, got, test.expected)
		}
	}
}
