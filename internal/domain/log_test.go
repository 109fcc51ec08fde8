package domain

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelInfo, "info"},
		{LevelSuccess, "success"},
		{LevelWarning, "warning"},
		{LevelError, "error"},
		{Level(99), "info"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		s    string
		want Level
	}{
		{"info", LevelInfo},
		{"success", LevelSuccess},
		{"warning", LevelWarning},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.s); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestDisplayNameFor(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"better_kits", "better kits"},
		{"hd-textures", "hd textures"},
		{"Restored_Voices-JP", "Restored Voices JP"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := DisplayNameFor(tt.id); got != tt.want {
			t.Errorf("DisplayNameFor(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
