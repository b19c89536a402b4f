package runner

import (
	"fmt"
	"math"

	"github.com/tiniprime/RugRun/internal/core"
)

// Visual characters for rendering
const (
	PlayerHead    = 'O'
	PlayerBody    = '█'
	PlayerLeg1    = '╱'
	PlayerLeg2    = '╲'
	ObstacleChar  = '▓'
	PickupChar    = '$'
	GroundChar    = '═'
	BlockChar     = '▪'
	DangerChar    = '░'
	hudRows       = 2
	dangerWaveW   = 60.0
	minScreenW    = 24
	minScreenH    = 10
	blockInterval = 8
)

var categoryColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorAmber}

// line is one row of a message card.
type line struct {
	text  string
	color core.Color
}

// viewport maps world units onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
}

func (e *Engine) viewport(dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / e.cfg.World.Width,
		sy: float64(dst.Height()-hudRows) / e.cfg.World.Height,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return hudRows + int(math.Floor(y*v.sy)) }

// Render draws the current run into dst. It never mutates the run.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	v := e.viewport(dst)
	s := e.state

	e.drawGround(dst, v)
	if s.Phase == core.PhasePlaying {
		e.drawDangerWave(dst, v)
	}
	for _, o := range e.obstacles.Obstacles() {
		e.drawObstacle(dst, v, o)
	}
	for _, p := range e.pickups.Pickups() {
		if !p.Collected {
			e.drawPickup(dst, v, p)
		}
	}
	e.drawPlayer(dst, v)
	e.drawHUD(dst)

	info := e.cfg.Variant
	switch s.Phase {
	case core.PhaseIdle:
		drawCard(dst, []line{
			{info.Title, core.ColorBrightGreen},
			{info.Tagline, core.ColorWhite},
			{"", core.ColorDefault},
			{info.StartHint, core.ColorYellow},
			{"Grab cash bags • Jump over scams • Get rich or die trying", core.ColorGray},
		})
	case core.PhaseOver:
		drawCard(dst, []line{
			{info.OverTitle, core.ColorRed},
			{info.OverLine, core.ColorGray},
			{fmt.Sprintf("Score: %d  |  Scams dodged: %d", s.Score, s.ObstaclesCleared), core.ColorWhite},
			{fmt.Sprintf("You stacked $%.2f this round", s.Currency()), core.ColorBrightGreen},
			{"", core.ColorDefault},
			{"ENTER or R to stack again  •  C to copy your run proof", core.ColorYellow},
		})
	}
}

func (e *Engine) drawGround(dst *core.Screen, v viewport) {
	gy := v.row(e.cfg.World.GroundY)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, core.ColorGray)

	// Scrolling block pattern under the ground line
	offset := int(float64(e.state.Frame) * e.state.Speed * v.sx * 1.5)
	for y := gy + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x+offset)%blockInterval == 0 {
				dst.SetColor(x, y, BlockChar, core.ColorGray)
			}
		}
	}
}

// drawDangerWave draws the creeping wall on the left edge.
func (e *Engine) drawDangerWave(dst *core.Screen, v viewport) {
	waveX := math.Min(-5, -dangerWaveW+float64(e.state.Frame)*0.008)
	right := v.col(waveX + dangerWaveW + 30)
	bottom := v.row(e.cfg.World.GroundY)
	for y := hudRows; y < bottom; y++ {
		for x := 0; x < right; x++ {
			dst.SetColor(x, y, DangerChar, core.ColorRed)
		}
	}
}

func (e *Engine) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	x0 := v.col(o.X)
	x1 := core.Max(v.col(o.Trailing()), x0+1)
	gy := v.row(e.cfg.World.GroundY)
	y0 := core.Min(v.row(e.cfg.World.GroundY-o.Height), gy-1)

	color := categoryColors[e.categoryIndex(o.Category)%len(categoryColors)]
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, gy-y0), ObstacleChar, color)
	if o.Category != "" {
		dst.SetColor(x0+(x1-x0)/2, y0, []rune(o.Category)[0], core.ColorWhite)
	}
}

func (e *Engine) categoryIndex(category string) int {
	for i, c := range e.cfg.Obstacles.Categories {
		if c == category {
			return i
		}
	}
	return 0
}

func (e *Engine) drawPickup(dst *core.Screen, v viewport, p Pickup) {
	c := e.cfg.Pickups.Size / 2
	dst.SetColor(v.col(p.X+c), v.row(p.Y+c), PickupChar, core.ColorBrightGreen)
}

// drawPlayer renders the runner: a head row, a body and animated legs.
func (e *Engine) drawPlayer(dst *core.Screen, v viewport) {
	pc := e.cfg.Player
	x0 := v.col(pc.X)
	x1 := core.Max(v.col(pc.X+pc.Width), x0+2)
	y0 := v.row(e.state.PlayerY)
	y1 := core.Max(v.row(e.state.PlayerY+pc.Height), y0+3)

	mid := x0 + (x1-x0)/2
	dst.SetColor(mid, y0, PlayerHead, core.ColorYellow)
	for y := y0 + 1; y < y1-1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColor(x, y, PlayerBody, core.ColorBlue)
		}
	}

	legs := y1 - 1
	switch {
	case e.state.Airborne:
		dst.SetColor(x0, legs, PlayerLeg1, core.ColorBlue)
		dst.SetColor(x1-1, legs, PlayerLeg2, core.ColorBlue)
	case (e.state.Frame/6)%2 == 0:
		dst.SetColor(x0, legs, PlayerLeg1, core.ColorBlue)
		dst.SetColor(x1-1, legs, PlayerLeg1, core.ColorBlue)
	default:
		dst.SetColor(x0, legs, PlayerLeg2, core.ColorBlue)
		dst.SetColor(x1-1, legs, PlayerLeg2, core.ColorBlue)
	}
}

func (e *Engine) drawHUD(dst *core.Screen) {
	s := e.state
	w := dst.Width()

	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)
	dst.DrawTextColor(1, 1, fmt.Sprintf("$%.2f stacked", s.Currency()), core.ColorBrightGreen)

	best := fmt.Sprintf("Best: %d", core.Max(e.best, s.Score))
	dst.DrawTextColor((w-len(best))/2, 0, best, core.ColorGreen)

	speed := fmt.Sprintf("Speed: %.1fx", s.Speed)
	dst.DrawTextColor(w-len(speed)-1, 0, speed, core.ColorGray)
	dodged := fmt.Sprintf("Scams dodged: %d", s.ObstaclesCleared)
	dst.DrawTextColor(w-len(dodged)-1, 1, dodged, core.ColorRed)
}

// drawCard draws a boxed message in the center of the screen.
func drawCard(dst *core.Screen, lines []line) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l.text)))
	}
	boxW := core.Min(inner+4, dst.Width())
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := core.Max(hudRows, (dst.Height()-boxH)/2)

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(rect, ' ', core.ColorDefault)
	dst.DrawBox(rect, core.ColorGray)

	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i, l.text, l.color)
	}
}
