package conversation

import (
	"testing"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)

	tests := []struct {
		input     string
		wantType  domain.CommandType
		wantGroup domain.Group
		wantValue string
	}{
		// Bare values
		{"all", domain.CommandActivate, domain.GroupFilter, "all"},
		{"easy", domain.CommandActivate, domain.GroupFilter, "easy"},
		{"Medium", domain.CommandActivate, domain.GroupFilter, "medium"},
		{"hard", domain.CommandActivate, domain.GroupFilter, "hard"},
		{"quick", domain.CommandActivate, domain.GroupFilter, "quick"},
		{"name", domain.CommandActivate, domain.GroupSort, "name"},
		{"time", domain.CommandActivate, domain.GroupSort, "time"},
		{"none", domain.CommandActivate, domain.GroupSort, "none"},

		// Aliases
		{"fast", domain.CommandActivate, domain.GroupFilter, "quick"},
		{"a-z", domain.CommandActivate, domain.GroupSort, "name"},
		{"minutes", domain.CommandActivate, domain.GroupSort, "time"},

		// Explicit group
		{"filter hard", domain.CommandActivate, domain.GroupFilter, "hard"},
		{"sort by name", domain.CommandActivate, domain.GroupSort, "name"},
		{"order alpha", domain.CommandActivate, domain.GroupSort, "name"},
		{"filter vegan", domain.CommandActivate, domain.GroupFilter, "vegan"},

		// Other commands
		{"reset", domain.CommandReset, 0, ""},
		{"help", domain.CommandHelp, 0, ""},
		{"?", domain.CommandHelp, 0, ""},
		{"q", domain.CommandQuit, 0, ""},

		// Unknown
		{"make me a sandwich", domain.CommandUnknown, 0, "make me a sandwich"},
		{"   ", domain.CommandUnknown, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := parser.Parse(tt.input)
			if cmd.Type != tt.wantType {
				t.Fatalf("input=%q: expected %s, got %s", tt.input, tt.wantType, cmd.Type)
			}
			if cmd.Type == domain.CommandActivate && cmd.Group != tt.wantGroup {
				t.Fatalf("input=%q: expected group %s, got %s", tt.input, tt.wantGroup, cmd.Group)
			}
			if cmd.Value != tt.wantValue {
				t.Fatalf("input=%q: expected value %q, got %q", tt.input, tt.wantValue, cmd.Value)
			}
		})
	}
}
