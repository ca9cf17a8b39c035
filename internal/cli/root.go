package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/civicscore/internal/engine"
	"github.com/ppiankov/civicscore/internal/model"
	"github.com/ppiankov/civicscore/internal/score"
	"github.com/ppiankov/civicscore/internal/store"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "civicscore",
	Short: "civicscore - weighted scoring of statute analyses",
	Long: `civicscore turns per-question analyses of municipal statutes into
entity-level and domain-level scores.

Analysis records written by any generation of the ingestion pipeline are
normalized into one canonical shape before scoring. Entities without an
analysis are reported as "not yet analyzed", never as a score of zero.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "civicscore v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.civicscore/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.String("data-dir", "", "data directory of the document store")
	flags.Int("workers", 0, "concurrent entity lookups for domain summaries")
	flags.String("format", "", "output format (table, json)")
	flags.String("log-format", "", "log format (text, json)")
	flags.String("doc-type", "", "realm document type (statute, policy)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("store.data_dir", flags.Lookup("data-dir"))
	_ = viper.BindPFlag("engine.workers", flags.Lookup("workers"))
	_ = viper.BindPFlag("output.format", flags.Lookup("format"))
	_ = viper.BindPFlag("output.log_format", flags.Lookup("log-format"))
	_ = viper.BindPFlag("realm.document_type", flags.Lookup("doc-type"))

	setDefaults(model.DefaultConfig())

	rootCmd.AddCommand(versionCmd)
}

// setDefaults registers every config key so env vars and unset flags resolve
func setDefaults(cfg *model.Config) {
	viper.SetDefault("realm.name", cfg.Realm.Name)
	viper.SetDefault("realm.document_type", string(cfg.Realm.DocumentType))
	viper.SetDefault("realm.entity_term", cfg.Realm.EntityTerm)
	viper.SetDefault("realm.domain_term", cfg.Realm.DomainTerm)
	viper.SetDefault("engine.workers", cfg.Engine.Workers)
	viper.SetDefault("store.data_dir", cfg.Store.DataDir)
	viper.SetDefault("store.cache_enabled", cfg.Store.CacheEnabled)
	viper.SetDefault("store.cache_ttl", cfg.Store.CacheTTL)
	viper.SetDefault("store.requests_per_second", cfg.Store.RequestsPerSecond)
	viper.SetDefault("store.burst", cfg.Store.Burst)
	viper.SetDefault("colors.low", cfg.Colors.Low)
	viper.SetDefault("colors.high", cfg.Colors.High)
	viper.SetDefault("colors.neutral", cfg.Colors.Neutral)
	viper.SetDefault("output.format", cfg.Output.Format)
	viper.SetDefault("output.log_format", cfg.Output.LogFormat)
	viper.SetDefault("output.verbose", cfg.Output.Verbose)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.civicscore")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// CIVICSCORE_STORE_DATA_DIR overrides store.data_dir, etc.
	viper.SetEnvPrefix("CIVICSCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the stderr logger for the CLI
func newLogger(cfg *model.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if cfg.Output.Verbose {
		opts.Level = slog.LevelDebug
	}
	if cfg.Output.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newEngine wires the configured store stack into an engine
func newEngine(cfg *model.Config, logger *slog.Logger) (*engine.Engine, error) {
	gradient, err := score.NewGradient(cfg.Colors.Low, cfg.Colors.High, cfg.Colors.Neutral)
	if err != nil {
		return nil, fmt.Errorf("colors: %w", err)
	}

	return engine.New(
		store.FromConfig(cfg.Store),
		cfg.Realm,
		engine.WithWorkers(cfg.Engine.Workers),
		engine.WithLogger(logger),
		engine.WithGradient(gradient),
	), nil
}
