package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var overlayColor = color.RGBA{A: 160}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(ecs *ecs.ECS, screen *ebiten.Image) {
	lc, ok := components.LevelComplete.First(ecs.World)
	if !ok {
		return
	}
	levelComplete := components.LevelComplete.Get(lc)
	if !levelComplete.IsComplete {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Finish.Message
	text.Draw(screen, title, titleFont, (width-textWidth(title, titleFont))/2, height/2-8, cfg.Finish.TextColor)

	msgFont := fonts.HUD.Get()
	msg := fmt.Sprintf("SCORE %d", levelComplete.Score)
	text.Draw(screen, msg, msgFont, (width-textWidth(msg, msgFont))/2, height/2+12, cfg.Finish.TextColor)
}

func textWidth(s string, face font.Face) int {
	return text.BoundString(face, s).Dx()
}
