package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/KharpukhaevV/folio/config"
	"github.com/KharpukhaevV/folio/contact"
	"github.com/KharpukhaevV/folio/github"
	"github.com/KharpukhaevV/folio/ui"
	"github.com/KharpukhaevV/folio/utils"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger

	// opener передаёт ссылки почтовому клиенту и браузеру
	opener contact.Opener = contact.SystemOpener{}
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio in the terminal",
	Long: `folio shows a personal portfolio: an About section, the most recently
updated public GitHub repositories as cards and a contact form that hands
the message to your email client.

Run without arguments to start the interactive page.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadDotEnv(); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", cfgFile, err)
		}

		// Интерактивный режим занимает терминал, поэтому пишет журнал только в файл
		if cmd == cmd.Root() {
			logger, err = newFileLogger(cfg.Log.File)
		} else {
			logger, err = newLogger([]string{"stderr"})
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute запускает корневую команду
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// runInteractive запускает страницу портфолио
func runInteractive() error {
	fetcher, err := github.NewFetcher(cfg.GitHub, logger)
	if err != nil {
		return err
	}

	model := ui.NewAppModel(ui.AppContext{
		Config: cfg,
		Prefs:  config.NewFileStore(cfg.Preferences.Path),
		Repos:  fetcher,
		Opener: opener,
		Logger: logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// loadDotEnv подхватывает .env из текущего каталога, если он есть
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// newFileLogger пишет журнал в файл; без файла журнал отключён
func newFileLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	if err := utils.EnsureDir(path); err != nil {
		return nil, err
	}
	return newLogger([]string{path})
}

func newLogger(outputs []string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = outputs
	zcfg.ErrorOutputPaths = outputs
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}
