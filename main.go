// meltdown is the Springfield Meltdown prototype: a single player circle moved
// with WASD inside a debug box.
//
// Usage:
//
//	meltdown [--config path] [--debug] [--log-level level]
//
// Controls:
//
//	W/A/S/D, arrows  - Move
//	P                - Pause
//	F1               - Toggle debug overlay
//	Esc              - Quit
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/springfieldmeltdown/meltdown/config"
	"github.com/springfieldmeltdown/meltdown/fonts"
	"github.com/springfieldmeltdown/meltdown/scenes"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewWorldScene(),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var (
	flagConfig   string
	flagDebug    bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "meltdown",
	Short: "Springfield Meltdown prototype",
	Long: `Opens the prototype window: a yellow circle you move with WASD inside
a green debug box.

Tuning is read from --config, ~/.meltdown/config.yaml or
./configs/meltdown.yaml, whichever is found first. Without any of them the
built-in defaults are used.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay visible")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)

	source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if source != "" {
		log.Info("loaded config", "path", source)
	}
	if cmd.Flags().Changed("debug") {
		config.Debug.Overlay = flagDebug
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetTPS(config.C.TPS)

	log.Info("starting", "window", fmt.Sprintf("%dx%d", config.C.Width, config.C.Height), "tps", config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	log.Info("bye")
	return nil
}

func main() {
	log.SetReportTimestamp(true)
	log.SetPrefix("meltdown")

	if err := rootCmd.Execute(); err != nil {
		log.Error("fatal", "error", err)
		os.Exit(1)
	}
}
