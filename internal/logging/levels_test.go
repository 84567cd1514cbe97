package logging

import "testing"

// TestIsValidLogLevel tests log level validation against the canonical set
func TestIsValidLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"DEBUG", true},
		{"INFO", true},
		{"WARN", true},
		{"ERROR", true},
		{"info", false}, // case-sensitive
		{"TRACE", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidLogLevel(tt.level); got != tt.want {
			t.Errorf("IsValidLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

// TestValidateLogLevel tests that invalid levels produce errors
func TestValidateLogLevel(t *testing.T) {
	if err := ValidateLogLevel("INFO"); err != nil {
		t.Errorf("ValidateLogLevel(INFO) unexpected error: %v", err)
	}
	if err := ValidateLogLevel("VERBOSE"); err == nil {
		t.Error("ValidateLogLevel(VERBOSE) expected error, got nil")
	}
}
