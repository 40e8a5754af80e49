package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/edumarques81/stellar-mediaadapter/internal/config"
	"github.com/edumarques81/stellar-mediaadapter/internal/domain/media"
	"github.com/edumarques81/stellar-mediaadapter/internal/infra/mpd"
	"github.com/edumarques81/stellar-mediaadapter/internal/version"
)

// rootOptions holds the persistent flags and the resolved configuration.
type rootOptions struct {
	configPath string
	debug      bool
	backend    string
	variant    string

	cfg config.Config
	out io.Writer
}

// newRootCmd builds the command tree. Adapter output goes to out.
func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{out: out}

	cmd := &cobra.Command{
		Use:   "mediaplayer",
		Short: "Play audio through a format adapter",
		Long: `mediaplayer plays audio files by format tag. Requests are routed through
an adapter onto a player that only understands mp4, either a console
player or an MPD server.`,
		Version:      version.GetInfo().String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}
	cmd.SetOut(out)
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.backend, "backend", config.BackendConsole, "Playback backend (console|mpd)")
	flags.StringVar(&opts.variant, "variant", config.VariantObject, "Adapter variant for the console backend (object|class)")

	cmd.AddCommand(newPlayCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolve loads the config file, applies explicitly set flags and sets up logging.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("variant") {
		cfg.Variant = o.variant
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogging(cfg.Debug)
	o.cfg = cfg
	return nil
}

// setupLogging sends logs to stderr so stdout carries only player output.
func setupLogging(debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// backend is a configured MediaPlayer together with its lifecycle hooks.
type backend struct {
	player media.MediaPlayer
	// ping reports whether the backend can play; nil for in-process players.
	ping  func() error
	close func() error
}

// Ping checks backend connectivity.
func (b *backend) Ping() error {
	if b.ping == nil {
		return nil
	}
	return b.ping()
}

// Close releases backend resources and logs any failure.
func (b *backend) Close() {
	if b.close == nil {
		return
	}
	if err := b.close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close backend")
	}
}

// newBackend builds the configured MediaPlayer.
func newBackend(cfg config.Config, out io.Writer) (*backend, error) {
	switch cfg.Backend {
	case config.BackendMPD:
		client := mpd.NewClient(cfg.MPD.Host, cfg.MPD.Port, cfg.MPD.Password)
		if err := client.Connect(); err != nil {
			return nil, err
		}
		return &backend{player: media.NewMPDAdapter(client), ping: client.Ping, close: client.Close}, nil
	case config.BackendConsole:
		if cfg.Variant == config.VariantClass {
			return &backend{player: media.NewClassMediaAdapterTo(out)}, nil
		}
		return &backend{player: media.NewMediaAdapterTo(out)}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
