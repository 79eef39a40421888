package session

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

const fuelBarWidth = 10

// Render draws the active mode, the HUD and any overlay message.
func (s *Session) Render(dst *core.Screen) {
	switch s.mode {
	case ModeRunner:
		s.run.Render(dst)
		s.drawTotals(dst, dst.Height()-1)
		return
	case ModeHillClimb:
		s.sprites = s.hill.Sprites(s.sprites[:0])
		s.viewport(s.hill.Camera()).Draw(dst, s.sprites)
		s.drawHillClimbHUD(dst)
	default:
		s.sprites = s.plat.Sprites(s.sprites[:0], s.stats)
		s.viewport(0).Draw(dst, s.sprites)
		s.drawPlatformerHUD(dst)
	}

	switch {
	case s.stats.Dead():
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Total Score: %d", s.total), "Press R to restart")
	case s.paused:
		dst.DrawMessage("PAUSED", "Press Esc to resume")
	}
}

func (s *Session) viewport(cameraX float64) core.Viewport {
	return core.Viewport{
		WorldW:  s.cfg.Screen.Width,
		WorldH:  s.cfg.Screen.Height,
		CameraX: cameraX,
	}
}

func (s *Session) drawPlatformerHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Total: %d  Top: %d", s.stats.Score, s.total, s.high))
	s.drawLives(dst, 1)
	for i, e := range s.plat.Effects() {
		dst.DrawTextColored(1, 2+i, e, core.ColorBrightYellow)
	}
	dst.DrawTextColored(1, dst.Height()-1, "Find the glowing red coin to switch game!", core.ColorBrightRed)
}

func (s *Session) drawHillClimbHUD(dst *core.Screen) {
	car := s.hill.Car()
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Total: %d  Top: %d", s.stats.Score, s.total, s.high))
	s.drawLives(dst, 1)
	dst.DrawText(1, 2, fmt.Sprintf("Fuel [%s] %3.0f%%", fuelBar(car.Fuel), car.Fuel))
	dst.DrawText(1, 3, fmt.Sprintf("Distance: %.0f", car.Distance))
	if s.hill.GoldenCoin() != nil {
		dst.DrawTextColored(1, 4, "Golden coin ahead!", core.ColorGold)
	}
	dst.DrawText(1, dst.Height()-1, "→/Space gas  ← brake  F fire  V swap  P platformer")
}

func (s *Session) drawLives(dst *core.Screen, y int) {
	dst.DrawTextColored(1, y, "Lives: "+strings.Repeat("♥", max(s.stats.Lives, 0)), core.ColorRed)
}

func (s *Session) drawTotals(dst *core.Screen, y int) {
	text := fmt.Sprintf(" Total: %d  Top: %d ", s.total, s.high)
	dst.DrawText(dst.Width()-len(text)-2, y, text)
}

func fuelBar(fuel float64) string {
	filled := min(max(int(fuel/100*fuelBarWidth+0.5), 0), fuelBarWidth)
	return strings.Repeat("█", filled) + strings.Repeat("·", fuelBarWidth-filled)
}
