package systems

import (
	"fmt"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/fonts"
	"github.com/automoto/hopdrop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD shows the score, the level name and the run counters.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()

	score := 0
	if player, ok := tags.Player.First(ecs.World); ok {
		score = components.Player.Get(player).Score
	}
	text.Draw(screen, fmt.Sprintf("SCORE %d", score), face, 6, 14, cfg.White)

	if lvl, ok := components.Level.First(ecs.World); ok {
		name := components.Level.Get(lvl).Name
		text.Draw(screen, name, face, screen.Bounds().Dx()-6-textWidth(name, face), 14, cfg.White)
	}

	if stats := runStatsOf(ecs.World); stats != nil {
		line := fmt.Sprintf("TRY %d  BEST %d", stats.Attempts, stats.BestScore)
		text.Draw(screen, line, face, 6, 28, cfg.White)
	}
}
