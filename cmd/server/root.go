package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/folio/internal/config"
	"github.com/dgallion1/folio/internal/content"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
	log     *slog.Logger
}

// flagKeys binds command-line flags to config keys. Flags a command does
// not define are skipped.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"log-format":  "log.format",
	"content-dir": "content.dir",
	"port":        "server.port",
	"host":        "server.host",
	"watch":       "content.watch",
	"workers":     "export.workers",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "folio",
		Short: "Case studies and component docs with live tables of contents",
		Long: `folio serves a portfolio of case studies and component documentation.

Pages are rendered on the server. A live page session tracks which section
is in view, drives table-of-contents navigation, and confirms code copies.

Configuration comes from flags, FOLIO_* environment variables, and an
optional YAML file (--config or FOLIO_CONFIG_FILE), in that order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (can also use FOLIO_CONFIG_FILE)")
	pf.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "json", "log format (json, text)")
	pf.String("content-dir", "", "content directory (default: embedded content)")

	root.AddCommand(newServeCmd(a), newHighlightCmd(a), newExportCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	file := a.cfgFile
	if file == "" {
		file = os.Getenv(config.EnvPrefix + "_CONFIG_FILE")
	}
	v, err := config.New(file)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	cfg := config.Load(v)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.v = v
	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg)
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// loadContent builds the catalog store from the configured source.
func (a *app) loadContent() (*content.Store, error) {
	load := content.Loader(content.Embedded)
	if dir := a.cfg.ContentDir; dir != "" {
		load = func() (*content.Catalog, error) { return content.LoadDir(dir) }
	}
	return content.NewStore(load, a.log)
}
