package gcalendar

import "testing"

func TestAIMarker(t *testing.T) {
	tests := []struct {
		desc string
		want bool
	}{
		{"Weekly sync\n\n" + AICreatedMarker, true},
		{AICreatedMarker, true},
		{"Weekly sync", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasAIMarker(tt.desc); got != tt.want {
			t.Errorf("HasAIMarker(%q) = %v, want %v", tt.desc, got, tt.want)
		}
	}
}

func TestStripAIMarker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Weekly sync\n\n" + AICreatedMarker, "Weekly sync"},
		{AICreatedMarker, ""},
		{"Weekly sync", "Weekly sync"},
	}

	for _, tt := range tests {
		if got := StripAIMarker(tt.in); got != tt.want {
			t.Errorf("StripAIMarker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
