package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"medigrip/internal/api"
	"medigrip/internal/config"
	"medigrip/internal/domain"
	"medigrip/internal/eventbus"
	"medigrip/internal/logging"
	"medigrip/internal/ui"
)

var (
	flagConfig string
	flagAPIURL string
	flagRole   string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "medigrip",
	Short: "Terminal dashboard for medical-aid administration",
	Long: `medigrip is a terminal dashboard for a medical-aid administration API:
members, claims, schemes and providers, with a global type-ahead search
reachable from any screen with /.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: user config dir)")
	rootCmd.Flags().StringVar(&flagAPIURL, "api-url", "", "administration API base URL")
	rootCmd.Flags().StringVar(&flagRole, "role", "", "session role: ADMIN, PROVIDER, PATIENT or GUEST")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func run() error {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// Flags win over the config file
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}
	if flagRole != "" {
		cfg.API.Role = flagRole
	}
	if flagDebug {
		cfg.Log.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	role, err := domain.ParseRole(cfg.API.Role)
	if err != nil {
		return err
	}

	log, err := logging.Open(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return err
	}
	log.Info("starting medigrip",
		zap.String("api", cfg.API.BaseURL),
		zap.String("role", string(role)))

	bus := eventbus.New(log)
	defer bus.Close()

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	model := ui.NewModel(bus, cfg, client, role, log)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
