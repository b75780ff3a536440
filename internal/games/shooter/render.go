package shooter

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Frame layout rows, relative to the top of the screen.
const (
	bannerRow    = 0
	statusRow    = 1
	fieldTopRow  = 2 // Top border; field row 0 is drawn one below it
	fieldOffsetY = 3
	fieldOffsetX = 1
	frameExtraW  = 2 // Left and right borders
	frameExtraH  = 5 // Banner, status, two borders, footer
	heartSlot    = 3
)

// Banner texts.
const (
	BannerPlaying = " CONSOLE SHOOTER "
	BannerEndless = " CONSOLE SHOOTER: ENDLESS "
	BannerLost    = " GAME OVER "
	BannerWon     = " YOU WIN! "

	ControlsLegend = " CONTROLS: A=Left, D=Right, SPACE=Shoot, Q=Quit "
)

// Entity colors.
const (
	ColorPlayer     = core.ColorBrightWhite
	ColorEnemy      = core.ColorRed
	ColorHeart      = core.ColorBrightRed
	ColorPlayerShot = core.ColorBrightCyan
	ColorEnemyShot  = core.ColorBrightYellow
)

// Glyphs holds the characters the field is drawn with.
type Glyphs struct {
	Player     rune
	Enemy      rune
	Boundary   rune
	PlayerShot rune
	EnemyShot  rune
	Heart      string
}

// GlyphsFrom converts configured glyphs, falling back to the defaults
// for empty values.
func GlyphsFrom(cfg config.GlyphConfig) Glyphs {
	def := config.DefaultGlyphs()
	pick := func(v, fallback string) rune {
		if v == "" {
			v = fallback
		}
		r, _ := utf8.DecodeRuneInString(v)
		return r
	}
	heart := cfg.HeartFilled
	if heart == "" {
		heart = def.HeartFilled
	}
	return Glyphs{
		Player:     pick(cfg.Player, def.Player),
		Enemy:      pick(cfg.Enemy, def.Enemy),
		Boundary:   pick(cfg.Boundary, def.Boundary),
		PlayerShot: pick(cfg.PlayerShot, def.PlayerShot),
		EnemyShot:  pick(cfg.EnemyShot, def.EnemyShot),
		Heart:      heart,
	}
}

// FrameSize returns the screen size needed to draw a field of the given
// dimensions.
func FrameSize(fieldW, fieldH int) (width, height int) {
	return fieldW + frameExtraW, fieldH + frameExtraH
}

// Banner returns the title row text for the world's status.
// A win takes precedence over a loss.
func Banner(w *World, r Rules) string {
	switch w.Status {
	case StatusWon:
		return BannerWon
	case StatusLost:
		return BannerLost
	}
	if r.Endless {
		return BannerEndless
	}
	return BannerPlaying
}

// Render draws a complete frame of the world into dst.
func Render(dst *core.Screen, w *World, r Rules, g Glyphs) {
	dst.Clear()

	drawBanner(dst, w, r, g)
	drawStatus(dst, w, r, g)
	drawField(dst, w, r, g)
	drawFooter(dst, w, r, g)
}

func drawBanner(dst *core.Screen, w *World, r Rules, g Glyphs) {
	width := dst.Width()
	x := 0
	for ; x < 3; x++ {
		dst.Set(x, bannerRow, g.Boundary)
	}
	x = dst.DrawText(x, bannerRow, Banner(w, r))
	for ; x < width; x++ {
		dst.Set(x, bannerRow, g.Boundary)
	}
}

func drawStatus(dst *core.Screen, w *World, r Rules, g Glyphs) {
	x := dst.DrawText(1, statusRow, " HEALTH: ")
	for i := 0; i < r.MaxHealth; i++ {
		if i < w.Player.Health {
			dst.DrawTextColor(x, statusRow, g.Heart, ColorHeart)
		}
		x += heartSlot
	}
	x = dst.DrawText(x, statusRow, fmt.Sprintf(" | SCORE: %d", w.Score))
	x = dst.DrawText(x, statusRow, fmt.Sprintf(" | LEVEL: %d", w.Level))
	x = dst.DrawText(x, statusRow, fmt.Sprintf(" | WAVE: %d", w.Wave))
	for ; x < dst.Width(); x++ {
		dst.Set(x, statusRow, g.Boundary)
	}
}

func drawField(dst *core.Screen, w *World, r Rules, g Glyphs) {
	dst.DrawHLine(0, fieldTopRow, dst.Width(), g.Boundary)
	dst.DrawHLine(0, fieldOffsetY+r.Height, dst.Width(), g.Boundary)
	for y := 0; y < r.Height; y++ {
		dst.Set(0, fieldOffsetY+y, g.Boundary)
		dst.Set(r.Width+fieldOffsetX, fieldOffsetY+y, g.Boundary)
	}

	// Later layers overwrite earlier ones: player > enemy > player shot > enemy shot.
	field := r.Field()
	draw := func(p core.Point, ch rune, c core.Color) {
		if field.Contains(p.X, p.Y) {
			dst.SetCell(p.X+fieldOffsetX, p.Y+fieldOffsetY, ch, c)
		}
	}
	for _, s := range w.EnemyShots {
		draw(s, g.EnemyShot, ColorEnemyShot)
	}
	for _, s := range w.PlayerShots {
		draw(s, g.PlayerShot, ColorPlayerShot)
	}
	for _, e := range w.Enemies {
		draw(e, g.Enemy, ColorEnemy)
	}
	draw(w.Player.Pos, g.Player, ColorPlayer)
}

func drawFooter(dst *core.Screen, w *World, r Rules, g Glyphs) {
	y := fieldOffsetY + r.Height + 1
	if w.Status.Terminal() {
		dst.DrawText(1, y, fmt.Sprintf(" FINAL SCORE: %d | ENEMIES KILLED: %d", w.Score, w.Kills))
	} else {
		dst.DrawText(1, y, ControlsLegend)
	}
	dst.Set(0, y, g.Boundary)
	dst.Set(dst.Width()-1, y, g.Boundary)
}
