package main

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

func TestResolveGameID(t *testing.T) {
	tests := []struct {
		arg  string
		want string
		ok   bool
	}{
		{"", shooter.IDClassic, true},
		{"classic", shooter.IDClassic, true},
		{"endless", shooter.IDEndless, true},
		{shooter.IDEndless, shooter.IDEndless, true},
		{"tetris", "tetris", false},
	}

	for _, tt := range tests {
		got, ok := resolveGameID(tt.arg)
		if got != tt.want || ok != tt.ok {
			t.Errorf("resolveGameID(%q) = %q, %v; want %q, %v", tt.arg, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyGameFlagsRejectsUnknownDifficulty(t *testing.T) {
	flagDifficulty = "brutal"
	defer func() { flagDifficulty = "" }()

	if err := applyGameFlags(); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestModeArgRoundTrip(t *testing.T) {
	for _, id := range []string{shooter.IDClassic, shooter.IDEndless} {
		got, ok := resolveGameID(modeArg(id))
		if !ok || got != id {
			t.Errorf("modeArg(%q) does not resolve back: got %q", id, got)
		}
	}
}
