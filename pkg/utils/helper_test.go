package utils

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{" 9999 ", 9999, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseID(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestOptionalString(t *testing.T) {
	if OptionalString("   ") != nil {
		t.Error("blank input should map to nil")
	}
	if got := OptionalString(" Nuts "); got == nil || *got != "Nuts" {
		t.Errorf("OptionalString trimmed value = %v", got)
	}
	if Deref(nil, "-") != "-" {
		t.Error("Deref(nil) should return fallback")
	}
}
