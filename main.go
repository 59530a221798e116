package main

import (
	"fmt"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/tunes/internal/app"
	"github.com/llehouerou/tunes/internal/config"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/logging"
	"github.com/llehouerou/tunes/internal/mpris"
	"github.com/llehouerou/tunes/internal/notify"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/speech"
	"github.com/llehouerou/tunes/internal/state"
	"github.com/llehouerou/tunes/internal/stderr"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "tunes [catalog]",
	Short: "A personal music player for the terminal",
	Long: `tunes plays a song catalog and keeps favorites and recently played lists.

The catalog is a JSON file, a URL serving a JSON array of
{title, artist, path, image} entries, or a music directory.

Keyboard shortcuts:
  Space        Play/pause
  n / p        Next / previous track
  ← / →        Seek -5% / +5%
  + / -        Volume up/down
  f            Toggle favorite
  /            Search
  v            Voice search
  Tab          Switch panel
  ?            Help
  q            Quit`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.config/tunes/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(args) == 1 {
		cfg.Catalog = args[0]
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logFile, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Capture ALSA noise before the speaker opens the device.
	if err := stderr.Start(); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	p := player.New()
	defer p.Close()

	restoreVolume(p, stateMgr, cfg)

	deps := app.Deps{
		Player:  p,
		Store:   stateMgr,
		Catalog: cfg.Catalog,
	}
	if cfg.HasVoiceConfig() {
		deps.Recognizer = speech.NewCommand(cfg.Voice.Command, cfg.Voice.Args...)
	}
	if cfg.Notifications {
		deps.NowPlaying = newNowPlaying()
	}

	// D-Bus calls may arrive before the program exists.
	var program atomic.Pointer[tea.Program]
	media, err := mpris.New(func(req mpris.Request) {
		if prog := program.Load(); prog != nil {
			prog.Send(req)
		}
	})
	if err != nil {
		log.Warn().Msg(errmsg.Format(errmsg.OpMPRISStart, err))
	} else {
		defer media.Close()
		deps.Media = media
	}

	prog := tea.NewProgram(app.New(deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	program.Store(prog)
	if _, err := prog.Run(); err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
		return err
	}
	return nil
}

// restoreVolume applies the saved volume, or the configured one on first run.
func restoreVolume(p *player.Player, st state.Interface, cfg *config.Config) {
	vol, err := st.GetVolume()
	if err != nil {
		log.Error().Err(err).Msg("read saved volume")
	}
	if vol != nil {
		p.SetVolume(vol.Volume)
		return
	}
	p.SetVolume(cfg.InitialVolume())
}

func newNowPlaying() *notify.NowPlaying {
	n, err := notify.New()
	if err != nil {
		log.Warn().Msg(errmsg.Format(errmsg.OpNotify, err))
		return nil
	}
	thumbs, err := notify.NewThumbnailer()
	if err != nil {
		log.Debug().Err(err).Msg("cover thumbnails disabled")
		thumbs = nil
	}
	return notify.NewNowPlaying(n, thumbs)
}
