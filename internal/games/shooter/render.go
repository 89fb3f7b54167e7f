package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar         = '█'
	FriendlyShotChar   = '│'
	FoeShotChar        = '•'
	SpawningEnemyChar  = '░'
	HealthBarFullChar  = '█'
	HealthBarEmptyChar = '░'
	healthBarWidth     = 10
)

// Enemy glyphs and colors by hull variant (cycling through)
var (
	EnemyGlyphs = []rune{'▼', '◆', '✖'}
	EnemyColors = []core.Color{core.ColorRed, core.ColorMagenta, core.ColorOrange}
)

var facingGlyphs = map[Facing]rune{
	FacingCenter: '▲',
	FacingLeft:   '◀',
	FacingRight:  '▶',
}

var powerUpGlyphs = map[PowerUpType]struct {
	r rune
	c core.Color
}{
	PowerUpRepair:     {'+', core.ColorBrightGreen},
	PowerUpShootSpeed: {'»', core.ColorCyan},
	PowerUpDamage:     {'*', core.ColorBrightYellow},
}

// viewport maps arena units onto the cells inside the border.
type viewport struct {
	x, y   int // top-left inner cell
	w, h   int // inner size in cells
	sx, sy float64
}

func newViewport(arena Arena, r core.Rect) viewport {
	v := viewport{x: r.X + 1, y: r.Y + 1, w: r.W - 2, h: r.H - 2}
	v.sx = float64(v.w) / arena.W
	v.sy = float64(v.h) / arena.H
	return v
}

// cells returns the inclusive-exclusive cell span of a box, at least one cell wide and tall.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Pos.X * v.sx))
	y0 := int(math.Floor(b.Pos.Y * v.sy))
	x1 := max(x0+1, int(math.Ceil(b.Right()*v.sx)))
	y1 := max(y0+1, int(math.Ceil(b.Bottom()*v.sy)))

	x0 = core.Clamp(x0, 0, v.w-1)
	y0 = core.Clamp(y0, 0, v.h-1)
	x1 = core.Clamp(x1, x0+1, v.w)
	y1 = core.Clamp(y1, y0+1, v.h)
	return core.NewRect(v.x+x0, v.y+y0, x1-x0, y1-y0)
}

func fillColored(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// Render draws the arena scaled into the screen, with a one-line HUD on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", g.minScreenW, g.minScreenH))
		return
	}
	if g.player == nil {
		return
	}

	g.drawHUD(dst)

	frame := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(frame)
	vp := newViewport(g.arena, frame)

	for _, pu := range g.powerUps.PowerUps() {
		glyph := powerUpGlyphs[pu.Type]
		fillColored(dst, vp.cells(pu.Box()), glyph.r, glyph.c)
	}

	for _, e := range g.spawner.Enemies() {
		r := vp.cells(e.Box())
		switch {
		case e.Spawning(g.clock.Now()):
			fillColored(dst, r, SpawningEnemyChar, core.ColorGray)
		case e.JustHit():
			fillColored(dst, r, EnemyGlyphs[e.Variant()%len(EnemyGlyphs)], core.ColorWhite)
		default:
			fillColored(dst, r, EnemyGlyphs[e.Variant()%len(EnemyGlyphs)], EnemyColors[e.Variant()%len(EnemyColors)])
		}
		for _, pr := range e.Projectiles() {
			fillColored(dst, vp.cells(pr.Box()), FoeShotChar, core.ColorBrightRed)
		}
	}

	for _, p := range g.player.Projectiles() {
		fillColored(dst, vp.cells(p.Box()), FriendlyShotChar, core.ColorYellow)
	}
	pr := vp.cells(g.player.Box())
	fillColored(dst, pr, PlayerChar, core.ColorGreen)
	dst.SetColored(pr.X+pr.W/2, pr.Y, facingGlyphs[g.player.Facing()], core.ColorBrightGreen)

	switch g.state {
	case StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Kills: %d  |  Press R to restart", g.spawner.KillCount()))
	}
}

// drawHUD renders health, kills, tier and weapon stats on row 0.
func (g *Game) drawHUD(dst *core.Screen) {
	hp := g.player.Health()
	filled := core.Clamp(hp*healthBarWidth/MaxHealth, 0, healthBarWidth)
	if hp > 0 && filled == 0 {
		filled = 1
	}

	barColor := core.ColorGreen
	switch {
	case hp <= 25:
		barColor = core.ColorRed
	case hp <= 50:
		barColor = core.ColorYellow
	}

	dst.DrawText(0, 0, "HP ")
	dst.DrawTextColored(3, 0, strings.Repeat(string(HealthBarFullChar), filled), barColor)
	dst.DrawTextColored(3+filled, 0, strings.Repeat(string(HealthBarEmptyChar), healthBarWidth-filled), core.ColorGray)

	stats := fmt.Sprintf(" %3d  Kills %d  Tier %d  Dmg %d  Rate %.2fs",
		hp, g.spawner.KillCount(), g.spawner.Difficulty(), g.player.Damage(), g.player.Cooldown())
	dst.DrawText(3+healthBarWidth, 0, stats)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
