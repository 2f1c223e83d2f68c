package scenes

import (
	"sync"

	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/session"
	"github.com/automoto/hopdrop/settings"
	"github.com/automoto/hopdrop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays the levels of a session in the window.
type PlatformerScene struct {
	opts    session.Options
	session *session.Session
	keys    map[cfg.ActionID]ebiten.Key
	once    sync.Once
	err     error
}

func NewPlatformerScene(opts session.Options) *PlatformerScene {
	return &PlatformerScene{opts: opts}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ps.session.RefreshSettings()
		ps.keys = KeyBindings(settings.Load(ps.opts.Settings))
	}

	ps.session.SetInput(session.Input{
		Left:  ebiten.IsKeyPressed(ps.keys[cfg.ActionMoveLeft]),
		Right: ebiten.IsKeyPressed(ps.keys[cfg.ActionMoveRight]),
		Jump:  ebiten.IsKeyPressed(ps.keys[cfg.ActionJump]),
	})
	return ps.session.Step(1.0 / float64(ebiten.TPS()))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ps.session == nil {
		return
	}
	w := ps.session.ECS()
	w.DrawLayer(cfg.Default, screen)
	w.DrawLayer(cfg.Overlay, screen)
}

func (ps *PlatformerScene) configure() {
	ps.keys = KeyBindings(settings.Load(ps.opts.Settings))

	opts := ps.opts
	opts.OnWorld = addRenderers
	ps.session, ps.err = session.New(opts)
}

func addRenderers(w *ecs.ECS) {
	w.AddRenderer(cfg.Default, systems.DrawLevel)
	w.AddRenderer(cfg.Default, systems.DrawActors)
	w.AddRenderer(cfg.Overlay, systems.DrawHUD)
	w.AddRenderer(cfg.Overlay, systems.DrawLevelComplete)
}

