package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/yt-thumbnails/internal/config"
	"github.com/ytget/yt-thumbnails/internal/download"
	"github.com/ytget/yt-thumbnails/internal/platform"
	"github.com/ytget/yt-thumbnails/internal/ui"
)

// ErrInterrupted is returned when the run was stopped by a signal
var ErrInterrupted = errors.New("run interrupted")

// app carries the state shared by the root command and its subcommands
type app struct {
	v       *viper.Viper
	cfgFile string
	version VersionInfo
	stderr  io.Writer
}

// NewRootCommand builds the command tree with its own viper instance
func NewRootCommand(info VersionInfo) *cobra.Command {
	a := &app{
		v:       viper.New(),
		version: info,
		stderr:  os.Stderr,
	}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "yt-thumbnails",
		Short: "Download Instagram and TikTok video thumbnails with yt-dlp",
		Long: `yt-thumbnails fetches a still image for every configured video URL with
yt-dlp and saves it under a fixed file name in the images directory, ready to
be referenced from a static page.

Examples:
  yt-thumbnails
  yt-thumbnails --output-dir ./site/images --timeout 45s
  yt-thumbnails --config ./thumbnails.yaml
  yt-thumbnails list`,
		Version:           info.Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runFetch,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.yt-thumbnails.yaml)")
	flags.String(config.KeyOutputDir, "", "directory thumbnails are written to (default: ./images)")
	flags.Duration(config.KeyTimeout, config.DefaultTimeout, "time limit for one yt-dlp invocation")
	flags.String(config.KeyTool, config.DefaultTool, "extraction tool executable")
	flags.String(config.KeyPython, platform.DefaultPythonCommand(), "python launcher used to install the tool")
	flags.Bool(config.KeySkipInstall, false, "do not try to install the tool when it is missing")
	flags.BoolP(config.KeyVerbose, "v", false, "verbose mode")

	// Bind with viper
	for _, key := range []string{
		config.KeyOutputDir,
		config.KeyTimeout,
		config.KeyTool,
		config.KeyPython,
		config.KeySkipInstall,
		config.KeyVerbose,
	} {
		cobra.CheckErr(a.v.BindPFlag(key, flags.Lookup(key)))
	}

	rootCmd.AddCommand(newVersionCommand(a))
	rootCmd.AddCommand(newListCommand(a))

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute(info VersionInfo) int {
	if err := NewRootCommand(info).Execute(); err != nil {
		return 1
	}
	return 0
}

// initConfig reads the config file and environment variables if set
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType(config.ConfigType)
		a.v.SetConfigName(config.ConfigName)
	}

	// Environment variables
	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else if a.v.GetBool(config.KeyVerbose) {
		fmt.Fprintf(a.stderr, "Using config file: %s\n", a.v.ConfigFileUsed())
	}
	return nil
}

// runFetch downloads the thumbnails of every configured item
func (a *app) runFetch(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(a.stderr, settings.Verbose)

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reporter := ui.NewReporter(cmd.OutOrStdout())
	reporter.SetVerbose(settings.Verbose)

	runner := platform.NewExecRunner()

	toolchain := platform.NewToolchain(runner, settings.Tool, reporter.Writer(), logger)
	toolchain.SetPython(settings.Python)
	toolchain.SetSkipInstall(settings.SkipInstall)

	fetcher := download.NewFetcher(runner, settings.Tool, logger)
	fetcher.SetTimeout(settings.Timeout)

	svc := download.NewService(toolchain, fetcher, reporter, settings.OutputDir, logger)
	summary := svc.Run(ctx, settings.Items)

	if summary.Interrupted {
		return fmt.Errorf("%w after %d of %d items", ErrInterrupted, len(summary.Results), summary.Total())
	}
	return nil
}

// newLogger creates the diagnostic logger; console progress goes through ui.Reporter
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}))
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
