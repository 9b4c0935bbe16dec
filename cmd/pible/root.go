package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/kerbaras/pible/pkg/app"
	"github.com/kerbaras/pible/pkg/config"
	"github.com/kerbaras/pible/pkg/logging"
	"github.com/kerbaras/pible/pkg/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath     string
	translation string
	apiKey      string
	dataDir     string
	verbose     bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "pible",
	Short:        "Read the Bible from your terminal",
	Long:         "Browse, look up and export scripture in the KJV or ESV with a TUI and CLI",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("translation") {
			loaded.Translation = translation
		}
		if cmd.Flags().Changed("api-key") {
			loaded.APIKey = apiKey
		}
		if cmd.Flags().Changed("data-dir") {
			loaded.DataDir = dataDir
		}
		if verbose {
			loaded.Logging.Level = "debug"
		}
		cfg = loaded

		l, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("config loaded", zap.String("path", cfgPath), zap.String("translation", cfg.Translation))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Syncing stderr fails on some terminals; nothing to do about it.
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default
		reader, err := newReader()
		if err != nil {
			return err
		}
		defer reader.Close()
		return app.NewApp(reader, defaultExportDir()).Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().StringVarP(&translation, "translation", "t", "", "translation to read (KJV or ESV)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "ESV API key (defaults to $ESV_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the KJV JSON files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(verseCmd)
	rootCmd.AddCommand(epubCmd)
	rootCmd.AddCommand(configCmd)
}

func newReader() (*services.Reader, error) {
	return services.NewReader(cfg, logger)
}

func defaultExportDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, "Downloads")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
