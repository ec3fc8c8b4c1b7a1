package api

import "testing"

// Serve() is a blocking function that runs until shutdown, so it is
// exercised by end-to-end tests rather than unit tests. These tests only
// verify the package constants and build-time variables.
func TestConstants(t *testing.T) {
	if name != "sugarcubed" {
		t.Errorf("name = %q, want %q", name, "sugarcubed")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	// Buildtime variables may carry default values but never empty ones.
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}
