// hopdrop is a charge-jump platformer: hold jump to charge, release to leap in
// the direction you are holding, and climb the tower to the finish.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/hopdrop/assets"
	"github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/fonts"
	"github.com/automoto/hopdrop/scenes"
	"github.com/automoto/hopdrop/session"
	"github.com/automoto/hopdrop/settings"
	"github.com/automoto/hopdrop/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDBPath string
	flagLevel  int
	flagFont   string
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:          "hopdrop",
	Short:        "Charge-jump platformer",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config override")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.hopdrop/scores.db", "Path to scores database")
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Index of the level to start on")
	rootCmd.Flags().StringVar(&flagFont, "font", "", "Optional TrueType font for the overlay text")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hopdrop",
	})

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("config loaded", "path", path)
	}

	if flagFont != "" {
		if err := loadFonts(flagFont); err != nil {
			logger.Warn("could not load font, using the built-in face", "error", err)
		}
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		return err
	}

	opts := session.Options{
		Levels:     levels,
		StartLevel: flagLevel,
		Logger:     logger,
	}

	if store, err := settings.OpenGdata(logger); err != nil {
		logger.Warn("could not open settings, using defaults", "error", err)
		opts.Settings = settings.NewMemoryStore()
	} else {
		opts.Settings = store
	}

	scores, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer scores.Close()
		opts.Recorder = scores
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("hopdrop")
	ebiten.SetTPS(config.Timing.TPS)

	return ebiten.RunGame(&Game{scene: scenes.NewPlatformerScene(opts)})
}

func loadFonts(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := fonts.LoadFont(fonts.HUD, ttf); err != nil {
		return err
	}
	return fonts.LoadFontWithSize(fonts.Title, ttf, 20)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
