package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ppiankov/nameparser/internal/model"
)

// Version is the release reported by `nameparser version`
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noCache bool

	cfg    *model.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nameparser [name ...]",
	Short: "Nameparser - split personal names into their parts",
	Long: `Nameparser splits free-text personal names into salutation, fore name,
middle name, surname, generation and suffix, collects aliases and
nicknames, and flags corporate entities, surname prefixes and
supplemental information.

Each argument is parsed as one name and the results are printed as a
list in argument order. Arguments that read as numbers are skipped.

Example:
  nameparser "John Smith"
  nameparser "Dr. Otto Von Bismark III" "Bruce Wayne a/k/a Batman"
  nameparser -f text 'Dwayne "The Rock" Johnson'`,
	Args:              cobra.ArbitraryArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runParse,
}

// Execute runs the root command. An interrupt cancels parsing in flight.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nameparser v%s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.nameparser/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	// Parse flags
	rootCmd.Flags().StringP("format", "f", model.FormatJSON, "output format (json, yaml, text)")
	rootCmd.Flags().String("color", model.ColorAuto, "color text output (auto, always, never)")
	rootCmd.Flags().Int("workers", 0, "parse workers (default: number of CPUs)")
	rootCmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	// Bind flags to viper
	_ = viper.BindPFlag("output.format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.color", rootCmd.Flags().Lookup("color"))
	_ = viper.BindPFlag("concurrency.workers", rootCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("log.level", rootCmd.Flags().Lookup("log-level"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".nameparser"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match NAMEPARSER_*, e.g.
	// NAMEPARSER_OUTPUT_FORMAT for output.format
	viper.SetEnvPrefix("NAMEPARSER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setup resolves the effective configuration and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	logger, err = newLogger(cfg.Log.Level, verbose)
	if err != nil {
		return err
	}
	return nil
}

// loadConfig layers v over model.DefaultConfig and validates the result
func loadConfig(v *viper.Viper) (*model.Config, error) {
	def := model.DefaultConfig()
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.color", def.Output.Color)
	v.SetDefault("concurrency.workers", def.Concurrency.Workers)
	v.SetDefault("cache.enabled", def.Cache.Enabled)
	v.SetDefault("cache.ttl", def.Cache.TTL)
	v.SetDefault("cache.cleanup_interval", def.Cache.CleanupInterval)
	v.SetDefault("log.level", def.Log.Level)

	c := &model.Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// 0 means one worker per CPU
	if c.Concurrency.Workers == 0 {
		c.Concurrency.Workers = def.Concurrency.Workers
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// newLogger builds a production zap logger writing JSON to stderr
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}
