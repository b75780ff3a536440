package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func renderWorld(w *World, r Rules) *core.Screen {
	width, height := FrameSize(r.Width, r.Height)
	s := core.NewScreen(width, height)
	Render(s, w, r, GlyphsFrom(config.DefaultGlyphs()))
	return s
}

func padRow(prefix string, width int, fill string) string {
	return prefix + strings.Repeat(fill, width-len(prefix))
}

func TestFrameSize(t *testing.T) {
	w, h := FrameSize(60, 25)
	if w != 62 || h != 30 {
		t.Errorf("FrameSize(60, 25) = %dx%d, want 62x30", w, h)
	}
}

func TestRenderInitialFrame(t *testing.T) {
	r := testRules()
	s := renderWorld(NewWorld(r), r)

	wantBanner := padRow("### CONSOLE SHOOTER ", 62, "#")
	if got := s.Row(0); got != wantBanner {
		t.Errorf("banner row:\n got %q\nwant %q", got, wantBanner)
	}

	wantStatus := padRow("  HEALTH: <3 <3 <3 <3 <3  | SCORE: 0 | LEVEL: 1 | WAVE: 1", 62, "#")
	if got := s.Row(1); got != wantStatus {
		t.Errorf("status row:\n got %q\nwant %q", got, wantStatus)
	}

	border := strings.Repeat("#", 62)
	if s.Row(2) != border || s.Row(28) != border {
		t.Errorf("field borders:\n%q\n%q", s.Row(2), s.Row(28))
	}
	for y := 3; y < 28; y++ {
		row := s.Row(y)
		if row[0] != '#' || row[61] != '#' {
			t.Errorf("row %d missing side walls: %q", y, row)
		}
	}

	wantFooter := "#" + padRow(ControlsLegend, 60, " ") + "#"
	if got := s.Row(29); got != wantFooter {
		t.Errorf("footer row:\n got %q\nwant %q", got, wantFooter)
	}
}

func TestRenderEntities(t *testing.T) {
	r := testRules()
	w := quietWorld(r)
	w.Enemies = []core.Point{core.P(5, 3)}
	w.PlayerShots = []core.Point{core.P(10, 10)}
	w.EnemyShots = []core.Point{core.P(12, 14)}

	s := renderWorld(w, r)

	tests := []struct {
		name  string
		x, y  int
		want  rune
		color core.Color
	}{
		{"player", 31, 26, 'P', ColorPlayer},
		{"enemy", 6, 6, 'E', ColorEnemy},
		{"player shot", 11, 13, '|', ColorPlayerShot},
		{"enemy shot", 13, 17, '.', ColorEnemyShot},
	}
	for _, tt := range tests {
		c := s.GetCell(tt.x, tt.y)
		if c.Rune != tt.want || c.Color != tt.color {
			t.Errorf("%s at (%d,%d) = %q/%v, want %q/%v", tt.name, tt.x, tt.y, c.Rune, c.Color, tt.want, tt.color)
		}
	}

	if c := s.GetCell(10, 1); c.Color != ColorHeart {
		t.Errorf("heart color = %v, want %v", c.Color, ColorHeart)
	}
}

func TestRenderPrecedence(t *testing.T) {
	r := testRules()
	w := quietWorld(r)
	w.Enemies = []core.Point{core.P(10, 10)}
	w.PlayerShots = []core.Point{core.P(10, 10), core.P(20, 10)}
	w.EnemyShots = []core.Point{core.P(20, 10), w.Player.Pos}

	s := renderWorld(w, r)

	if got := s.Get(11, 13); got != 'E' {
		t.Errorf("enemy over player shot: got %q", got)
	}
	if got := s.Get(21, 13); got != '|' {
		t.Errorf("player shot over enemy shot: got %q", got)
	}
	if got := s.Get(31, 26); got != 'P' {
		t.Errorf("player over enemy shot: got %q", got)
	}
}

func TestRenderPartialHealth(t *testing.T) {
	r := testRules()
	w := quietWorld(r)
	w.Player.Health = 2
	w.Score = 40
	w.Wave = 4
	w.Level = 2

	s := renderWorld(w, r)

	want := padRow("  HEALTH: <3 <3           | SCORE: 40 | LEVEL: 2 | WAVE: 4", 62, "#")
	if got := s.Row(1); got != want {
		t.Errorf("status row:\n got %q\nwant %q", got, want)
	}
}

func TestRenderTerminalFrames(t *testing.T) {
	tests := []struct {
		status Status
		banner string
	}{
		{StatusLost, BannerLost},
		{StatusWon, BannerWon},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			r := testRules()
			w := quietWorld(r)
			w.Status = tt.status
			w.Score = 70
			w.Kills = 7

			s := renderWorld(w, r)

			if got, want := s.Row(0), padRow("###"+tt.banner, 62, "#"); got != want {
				t.Errorf("banner:\n got %q\nwant %q", got, want)
			}
			footer := "#" + padRow(" FINAL SCORE: 70 | ENEMIES KILLED: 7", 60, " ") + "#"
			if got := s.Row(29); got != footer {
				t.Errorf("footer:\n got %q\nwant %q", got, footer)
			}
		})
	}
}

func TestRenderEndlessBanner(t *testing.T) {
	r := NewRules(config.DefaultShooterConfig(), true)
	s := renderWorld(NewWorld(r), r)

	if got := s.Row(0); !strings.HasPrefix(got, "###"+BannerEndless+"#") {
		t.Errorf("banner = %q", got)
	}
}

func TestRenderCustomGlyphs(t *testing.T) {
	r := testRules()
	w := quietWorld(r)
	s := core.NewScreen(FrameSize(r.Width, r.Height))

	Render(s, w, r, GlyphsFrom(config.GlyphConfig{Player: "A", Boundary: "*"}))

	if got := s.Get(31, 26); got != 'A' {
		t.Errorf("player glyph = %q, want 'A'", got)
	}
	if got := s.Row(2); got != strings.Repeat("*", 62) {
		t.Errorf("border = %q", got)
	}
	// Unset glyphs keep their defaults.
	if got := s.Get(10, 1); got != '<' {
		t.Errorf("heart glyph = %q, want '<'", got)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := testRules()
	w := NewWorld(r)

	first := renderWorld(w, r).String()
	second := renderWorld(w, r).String()
	if first != second {
		t.Error("rendering the same world twice should produce the same frame")
	}
}
