package zigzag

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
)

// Visual characters for rendering
const (
	TileChar    = '█'
	FallingChar = '▓'
	GemChar     = '◆'
	SphereChar  = '●'
)

// tileCols is the number of screen columns one tile step spans sideways.
const tileCols = 2

// renderer draws one snapshot in an isometric view: a step along the path
// (either -Z or +X) moves one row up, -Z shifts left and +X shifts right.
type renderer struct {
	snap     Snapshot
	cfg      config.ZigzagConfig
	floatAge map[int]float64
	tickTime time.Duration
	elapsed  float64
}

// anchor returns the screen cell the camera target maps to.
func anchor(dst *core.Screen) (int, int) {
	return dst.Width() / 2, dst.Height() * 3 / 4
}

// project maps a world point to a screen cell. rest is the height the object
// has when it is not falling; distance below it shifts the cell down.
func (r renderer) project(dst *core.Screen, p core.Vec3, rest float64) (int, int) {
	size := r.cfg.Level.TileSize
	rel := p.Sub(r.snap.Camera.Target)
	u := (rel.X - rel.Z) / size
	v := (rel.X + rel.Z) / size
	drop := (rest - p.Y) / size

	cx, cy := anchor(dst)
	col := cx + int(math.Round(v*tileCols))
	row := cy - int(math.Round(u)) + int(math.Round(drop))
	return col, row
}

func (r renderer) draw(dst *core.Screen) {
	dst.Clear()

	tileRest := -r.cfg.Level.TileDepth / 2
	gemRest := tileRest + r.cfg.GemHeightOffset()

	for _, t := range r.snap.Tiles {
		col, row := r.project(dst, t.Position, tileRest)
		ch, color := TileChar, core.ColorCyan
		switch {
		case t.Status == TileFalling:
			ch, color = FallingChar, core.ColorDarkGray
		case r.snap.HasSupport && t.ID == r.snap.SupportID:
			color = core.ColorBrightWhite
		case t.ID < r.cfg.PlatformTileCount():
			color = core.ColorBlue
		}
		dst.SetColor(col-1, row, ch, color)
		dst.SetColor(col, row, ch, color)
	}

	for _, g := range r.snap.Gems {
		col, row := r.project(dst, g.Position, gemRest)
		dst.SetColor(col, row, GemChar, core.ColorBrightMagenta)
	}

	col, row := r.project(dst, r.snap.SpherePosition, r.cfg.Sphere.Radius)
	dst.SetColor(col, row, SphereChar, core.ColorBrightWhite)

	for _, f := range r.snap.Floats {
		col, row := r.project(dst, f.Position, gemRest)
		rise := int(r.floatAge[f.ID] / floatLifetime * 3)
		dst.DrawTextColor(col, row-1-rise, f.Label, core.ColorYellow)
	}

	r.drawHUD(dst)

	switch r.snap.Phase {
	case PhaseReady:
		drawPanel(dst, core.ColorCyan,
			"Z I G Z A G",
			"",
			"SPACE or click to start",
			fmt.Sprintf("Best: %d   Games: %d", r.snap.BestScore, r.snap.GamesPlayed),
		)
	case PhaseGameOver:
		drawPanel(dst, core.ColorRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d   Best: %d", r.snap.Score, r.snap.BestScore),
			"SPACE to continue",
		)
	}

	if r.snap.Perf {
		r.drawPerf(dst)
	}
}

func (r renderer) drawHUD(dst *core.Screen) {
	score := fmt.Sprintf(" Score: %d ", r.snap.Score)
	dst.DrawTextColor(1, 0, score, core.ColorBrightWhite)

	best := fmt.Sprintf(" Best: %d ", r.snap.BestScore)
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(best)-1, 0, best, core.ColorYellow)

	sound := " ♪ on "
	if !r.snap.Sound {
		sound = " ♪ off "
	}
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(sound)-1, 1, sound, core.ColorGray)
}

func (r renderer) drawPerf(dst *core.Screen) {
	line := fmt.Sprintf(" t %.1fs  tick %s  tiles %d  gems %d  speed %.2f  path %s ",
		r.elapsed, r.tickTime.Round(time.Microsecond), len(r.snap.Tiles), len(r.snap.Gems), r.snap.Speed, r.snap.FrontierDir)
	dst.DrawTextColor(1, dst.Height()-1, line, core.ColorGray)
}

// drawPanel draws a boxed message in the middle of the screen.
func drawPanel(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}
	w, h := width+6, len(lines)+2
	x, y := (dst.Width()-w)/2, (dst.Height()-h)/2

	box := core.NewRect(x, y, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l, color)
	}
}
