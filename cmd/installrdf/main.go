package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mook/hippie/internal/config"
	"github.com/mook/hippie/internal/domain"
	"github.com/mook/hippie/internal/manifest"
	"github.com/mook/hippie/internal/output"
	"github.com/mook/hippie/internal/utils"
	"github.com/mook/hippie/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// now is the clock read once per invocation; replaced in tests
var now = time.Now

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(viper.GetViper()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// rootOptions holds the flags that are not bound to configuration keys
type rootOptions struct {
	cfgFile string
	verbose bool
	dryRun  bool
	at      string
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "installrdf",
		Short: "Print the install.rdf manifest of the Hippie add-on",
		Long: `installrdf prints the install.rdf manifest of the Hippie add-on
(HipChat protocol for Thunderbird/Instantbird) to standard output.

The add-on version is 0.0.0.<YYYYMMDD>.<epoch seconds>, both taken from
the current UTC time, so every build gets a fresh, increasing version.`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", fmt.Sprintf("config file (default is %s)", config.ConfigFilePath()))
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output on stderr")

	rootCmd.Flags().StringP("output", "o", config.DefaultOutputPath, "Write the manifest to a file (- for stdout)")
	rootCmd.Flags().Bool("force", false, "Overwrite an existing output file")
	rootCmd.Flags().String("descriptor", "", "YAML or JSON add-on descriptor to render instead of Hippie")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Render the manifest without writing it")
	rootCmd.Flags().StringVar(&opts.at, "at", "", "Render for this instant (RFC3339 or epoch seconds) instead of now")

	_ = v.BindPFlag("output.path", rootCmd.Flags().Lookup("output"))
	_ = v.BindPFlag("output.overwrite", rootCmd.Flags().Lookup("force"))
	_ = v.BindPFlag("descriptor", rootCmd.Flags().Lookup("descriptor"))

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func run(cmd *cobra.Command, v *viper.Viper, opts *rootOptions) error {
	if opts.cfgFile != "" {
		v.SetConfigFile(opts.cfgFile)
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: opts.verbose,
	}).WithComponent("installrdf")

	instant, err := parseInstant(opts.at)
	if err != nil {
		return err
	}

	var doc string
	if cfg.Descriptor == "" {
		log.Debug().Str("version", manifest.Version(instant)).Msg("Rendering built-in manifest")
		doc = manifest.Generate(instant)
	} else {
		addon, err := manifest.NewLoader().Load(cfg.Descriptor)
		if err != nil {
			return fmt.Errorf("failed to load descriptor: %w", err)
		}
		log.WithAddOn(addon.ID).Debug().
			Str("descriptor", cfg.Descriptor).
			Str("version", manifest.Version(instant)).
			Msg("Rendering manifest from descriptor")
		doc, err = manifest.Render(*addon, instant)
		if err != nil {
			return err
		}
	}

	writer := output.NewWriter(output.WriterOptions{
		Path:   cfg.Output.Path,
		Force:  cfg.Output.Overwrite,
		DryRun: opts.dryRun,
		Stdout: cmd.OutOrStdout(),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := writer.Write(ctx, doc); err != nil {
		return err
	}

	if opts.dryRun {
		log.Info().Str("path", writer.Path()).Msg("Dry run, manifest not written")
	} else if !writer.ToStdout() {
		log.Info().Str("path", writer.Path()).Msg("Manifest written")
	}
	return nil
}

// parseInstant returns the clock's current time for an empty value,
// otherwise the instant given as RFC3339 or integer epoch seconds.
func parseInstant(value string) (time.Time, error) {
	if value == "" {
		return now().UTC(), nil
	}
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return checkInstant(value, time.Unix(secs, 0).UTC())
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", domain.ErrInvalidTime,
			domain.NewValidationError("at", fmt.Sprintf("%q is neither RFC3339 nor epoch seconds", value)))
	}
	return checkInstant(value, t.UTC())
}

// checkInstant keeps the date stamp at eight digits and the epoch seconds
// non-negative.
func checkInstant(value string, t time.Time) (time.Time, error) {
	if t.Unix() < 0 || t.Year() > 9999 {
		return time.Time{}, fmt.Errorf("%w: %w", domain.ErrInvalidTime,
			domain.NewValidationError("at", fmt.Sprintf("%q is outside 1970-01-01 to 9999-12-31 UTC", value)))
	}
	return t, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
