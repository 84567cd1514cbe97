package validate

import "testing"

// TestCategoryFormat tests record category validation
func TestCategoryFormat(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantErr  bool
	}{
		{"simple lowercase", "books", false},
		{"with numbers", "tier2", false},
		{"with hyphen", "vinyl-records", false},
		{"with underscore", "field_notes", false},
		{"empty", "", true},
		{"uppercase", "Books", true},
		{"spaces", "old books", true},
		{"leading hyphen", "-books", true},
		{"trailing underscore", "books_", true},
		{"special chars", "books!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CategoryFormat(tt.category)
			if (err != nil) != tt.wantErr {
				t.Errorf("CategoryFormat(%q) error = %v, wantErr %v", tt.category, err, tt.wantErr)
			}
		})
	}
}

// TestParseBindAddress tests host:port parsing and validation
func TestParseBindAddress(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"valid loopback", "127.0.0.1:8008", false},
		{"valid any", "0.0.0.0:4200", false},
		{"empty", "", true},
		{"missing port", "127.0.0.1", true},
		{"bad port", "127.0.0.1:notaport", true},
		{"port out of range", "127.0.0.1:70000", true},
		{"not an ip", "localhost:8008", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBindAddress(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseBindAddress(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
		})
	}
}
