package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classic-snake/audio"
	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/ui"
	"classic-snake/ui/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// frontend is a window, real or terminal, showing one panel.
type frontend interface {
	Panel() *game.Panel
	Run(ctx context.Context) error
	Close() error
}

type flags struct {
	configFile string
	cfg        config.Config
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("Snake exited")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	f := &flags{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:           "snake",
		Short:         "Classic single-player Snake",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(f.configFile, f.cfg, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configFile, "config", "c", "", "YAML configuration file")
	fs.StringVar(&f.cfg.Frontend, "frontend", f.cfg.Frontend, "window or terminal")
	fs.DurationVar(&f.cfg.Tick, "tick", f.cfg.Tick, "time between game steps")
	fs.Uint64Var(&f.cfg.Seed, "seed", f.cfg.Seed, "food placement seed (0 picks one from the clock)")
	fs.BoolVar(&f.cfg.Sound, "sound", f.cfg.Sound, "play sound cues")
	fs.StringVar(&f.cfg.ScoresFile, "scores", f.cfg.ScoresFile, "high score file (empty keeps scores in memory)")
	fs.StringVar(&f.cfg.LogLevel, "log-level", f.cfg.LogLevel, "trace, debug, info, warn or error")
	fs.StringVar(&f.cfg.LogFile, "log-file", f.cfg.LogFile, "write logs to this file")
	return cmd
}

// resolveConfig loads the config file and lets explicitly set flags win.
func resolveConfig(path string, fromFlags config.Config, fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	overrides := map[string]func(){
		"frontend":  func() { cfg.Frontend = fromFlags.Frontend },
		"tick":      func() { cfg.Tick = fromFlags.Tick },
		"seed":      func() { cfg.Seed = fromFlags.Seed },
		"sound":     func() { cfg.Sound = fromFlags.Sound },
		"scores":    func() { cfg.ScoresFile = fromFlags.ScoresFile },
		"log-level": func() { cfg.LogLevel = fromFlags.LogLevel },
		"log-file":  func() { cfg.LogFile = fromFlags.LogFile },
	}
	fs.Visit(func(fl *pflag.Flag) {
		if set, ok := overrides[fl.Name]; ok {
			set()
		}
	})

	return cfg, cfg.Validate()
}

// setupLogger points the global logger at stderr, or at the log file when
// one is set. The terminal frontend owns the screen, so without a log file
// its logs are dropped.
func setupLogger(cfg config.Config) (io.Closer, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	var closer io.Closer
	switch {
	case cfg.LogFile != "":
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", cfg.LogFile)
		}
		out = zerolog.ConsoleWriter{Out: file, NoColor: true, TimeFormat: time.RFC3339}
		closer = file
	case cfg.Frontend == config.FrontendTerminal:
		out = io.Discard
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closer, nil
}

func newFrontend(cfg config.Config, logger zerolog.Logger, opts ...game.Option) (frontend, error) {
	settings := cfg.Settings()
	if cfg.Frontend == config.FrontendTerminal {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.Wrap(err, "create terminal screen")
		}
		if err := screen.Init(); err != nil {
			return nil, errors.Wrap(err, "initialise terminal screen")
		}
		return terminal.New(screen, settings, logger, opts...), nil
	}
	return ui.NewWindow(settings, logger, opts...), nil
}

func run(ctx context.Context, cfg config.Config) (err error) {
	logCloser, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer func() {
			err = multierror.Append(err, logCloser.Close()).ErrorOrNil()
		}()
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().
		Str("frontend", cfg.Frontend).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("unit", cfg.UnitSize).
		Dur("tick", cfg.Tick).
		Uint64("seed", seed).
		Msg("Starting snake")

	state := manager.NewStateManager(cfg.ScoresFile)
	if err := state.LoadStats(); err != nil {
		log.Warn().Err(err).Msg("Could not load scores, starting a fresh table")
	}

	sound := audio.NewSoundManager(log.Logger)
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Warn().Err(err).Msg("Audio initialization failed")
		}
	}

	f, err := newFrontend(cfg, log.Logger, game.WithSeed(seed))
	if err != nil {
		return err
	}

	panel := f.Panel()
	panel.AddListener(sound)
	panel.AddListener(newScoreKeeper(state, log.Logger))

	var result *multierror.Error
	result = multierror.Append(result, f.Run(ctx))
	result = multierror.Append(result, f.Close())
	result = multierror.Append(result, sound.Close())

	log.Info().Int("score", panel.Score()).Stringer("phase", panel.Phase()).Msg("Snake closed")
	return result.ErrorOrNil()
}
