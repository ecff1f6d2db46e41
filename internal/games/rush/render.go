package rush

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-rush/internal/core"
)

// Visual constants for rendering
const (
	hudRows     = 3 // Status lines above the track
	maxLaneCols = 11
	minLaneCols = 7

	heartFull  = '♥'
	heartEmpty = '♡'
	roadEdge   = '║'
	laneMark   = '┆'
	playerChar = '▲'
)

// layout maps track units onto screen cells.
type layout struct {
	x, top   int // Left border column and first track row
	laneCols int
	rows     int
	length   float64
}

func (g *Game) layout(dst *core.Screen) (layout, bool) {
	rows := dst.Height() - hudRows
	laneCols := core.Min(maxLaneCols, (dst.Width()-2)/len(Lanes))
	if rows < 8 || laneCols < minLaneCols {
		return layout{}, false
	}
	w := laneCols*len(Lanes) + 2
	return layout{
		x:        (dst.Width() - w) / 2,
		top:      hudRows,
		laneCols: laneCols,
		rows:     rows,
		length:   g.engine.cfg.Track.Length,
	}, true
}

// row converts a track position to a screen row (may be off-track).
func (l layout) row(pos float64) int {
	return l.top + int(math.Floor(pos/l.length*float64(l.rows)))
}

// span returns the visible rows covered by [pos, pos+h), at least one.
func (l layout) span(pos, h float64) (int, int) {
	from := l.row(pos)
	to := core.Max(l.row(pos+h), from+1)
	return core.Max(from, l.top), core.Min(to, l.top+l.rows)
}

// laneX returns the first inner column of a lane.
func (l layout) laneX(lane Lane) int {
	return l.x + 1 + lane.Index()*l.laneCols
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	l, ok := g.layout(dst)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	g.drawTrack(dst, l, &snap)
	for _, ent := range snap.Entities() {
		switch v := ent.(type) {
		case Obstacle:
			drawObstacle(dst, l, v)
		case PowerUp:
			drawPowerUp(dst, l, v)
		}
	}
	g.drawPlayer(dst, l, &snap)
	drawHUD(dst, &snap)

	switch snap.State {
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press SPACE to resume")
	case StateGameOver:
		sub := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.BestScore)
		if snap.Score > 0 && snap.Score >= snap.BestScore {
			sub = fmt.Sprintf("NEW BEST: %d", snap.Score)
		}
		drawCenteredMessage(dst, "GAME OVER", sub+"  |  SPACE to restart")
	}
}

func (g *Game) drawTrack(dst *core.Screen, l layout, snap *Snapshot) {
	right := l.x + 1 + l.laneCols*len(Lanes)
	dst.DrawVLineColored(l.x, l.top, l.rows, roadEdge, core.ColorBrightMagenta)
	dst.DrawVLineColored(right, l.top, l.rows, roadEdge, core.ColorBrightCyan)

	// Dashes scroll with distance.
	phase := int(snap.Distance / (l.length / float64(l.rows)))
	for i := 1; i < len(Lanes); i++ {
		x := l.x + i*l.laneCols
		for y := range l.rows {
			if (y-phase)%3 != 0 {
				dst.SetColored(x, l.top+y, laneMark, core.ColorMagenta)
			}
		}
	}
}

func drawObstacle(dst *core.Screen, l layout, o Obstacle) {
	glyph, color := '█', core.ColorRed
	switch o.Kind {
	case ObstacleBarrier:
		glyph, color = '▓', core.ColorYellow
	case ObstacleTruck:
		glyph, color = '█', core.ColorGray
	}

	from, to := l.span(o.Pos, o.Height)
	x := l.laneX(o.Lane) + 1
	dst.DrawRectColored(core.NewRect(x, from, l.laneCols-3, to-from), glyph, color)
}

func drawPowerUp(dst *core.Screen, l layout, p PowerUp) {
	glyph, color := '●', core.ColorBrightYellow
	switch p.Kind {
	case PowerUpShield:
		glyph, color = '◈', core.ColorCyan
	case PowerUpBoost:
		glyph, color = '»', core.ColorOrange
	}

	from, to := l.span(p.Pos, 0)
	if from >= to {
		return
	}
	x := l.laneX(p.Lane) + (l.laneCols-1)/2 - 1
	dst.DrawTextColored(x, from, "["+string(glyph)+"]", color)
}

func (g *Game) drawPlayer(dst *core.Screen, l layout, snap *Snapshot) {
	t := g.engine.cfg.Track
	from, to := l.span(g.engine.playerY(), t.PlayerHeight)

	color := core.ColorBrightMagenta
	if snap.Shield {
		color = core.ColorBrightCyan
	}
	x := l.laneX(snap.Lane) + 2
	w := l.laneCols - 5
	dst.DrawRectColored(core.NewRect(x, from, w, to-from), '█', color)
	dst.DrawHLine(x, from, w, ' ')
	dst.SetColored(x+w/2, from, playerChar, color)
	if snap.Boost && to < l.top+l.rows {
		dst.DrawTextColored(x, to, strings.Repeat("^", w), core.ColorOrange)
	}
}

func drawHUD(dst *core.Screen, snap *Snapshot) {
	hearts := make([]rune, 0, 3)
	for i := range 3 {
		if i < snap.Lives {
			hearts = append(hearts, heartFull)
		} else {
			hearts = append(hearts, heartEmpty)
		}
	}
	dst.DrawTextColored(1, 0, string(hearts), core.ColorBrightRed)
	dst.DrawTextColored(6, 0, fmt.Sprintf("● %d", snap.Coins), core.ColorBrightYellow)

	scoreText := fmt.Sprintf("SCORE %d", snap.Score)
	dst.DrawTextColored(dst.Width()-len(scoreText)-1, 0, scoreText, core.ColorBrightCyan)

	status := fmt.Sprintf("DISTANCE: %dm • SPEED: %.1fx", int(snap.Distance), snap.Speed)
	dst.DrawTextCenteredColored(1, status, core.ColorCyan)

	var banners []string
	if snap.Shield {
		banners = append(banners, "SHIELD ACTIVE")
	}
	if snap.Boost {
		banners = append(banners, "BOOST ACTIVE")
	}
	if snap.ComboHint {
		banners = append(banners, fmt.Sprintf("COMBO x%d!", snap.Combo))
	}
	if len(banners) > 0 {
		dst.DrawTextCenteredColored(2, strings.Join(banners, "  "), core.ColorBrightYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Min(core.Max(tw, sw)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightMagenta)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}
