package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"turfzone/internal/cmdutils"
	"turfzone/internal/config"
	"turfzone/internal/telemetry"
	"turfzone/internal/ui"
)

var exit = os.Exit
var cfgFile string
var loggedOut bool

// runApp starts the terminal UI. Tests replace it.
var runApp = func(m ui.AppModel) error {
	return ui.RunApp(m, tea.WithAltScreen())
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "turfzone",
	Short: "TurfZone: explore sports turfs and book a slot",
	Long: `TurfZone lists sports turfs by category from a SQL store and walks
through a mock booking flow. Without a subcommand it starts the terminal UI.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'turfzone --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("category", "", "Category to look up (default Football)")
	rootCmd.PersistentFlags().String("store", "", "Store type (sqlite, postgres)")
	rootCmd.PersistentFlags().String("dsn", "", "SQLite path or Postgres connection string")
	rootCmd.PersistentFlags().BoolVar(&loggedOut, "logged-out", false, "Start with the session logged out")
}

// bindFlags ties the persistent flags to their config keys. It runs on
// every initialization so a viper reset does not lose them.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("category", flags.Lookup("category"))
	viper.BindPFlag("store.type", flags.Lookup("store"))
	viper.BindPFlag("store.dsn", flags.Lookup("dsn"))
	viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	bindFlags()

	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	// Validate configuration values
	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"), false)
}

// currentSettings applies the flags that have no config key of their own.
func currentSettings() config.Settings {
	s := config.Current()
	if loggedOut {
		s.LoggedIn = false
	}
	return s
}

// openRuntime builds the shared object graph and, when metrics_port is set,
// serves its metrics on a side listener.
func openRuntime() (*cmdutils.Runtime, error) {
	s := currentSettings()
	rt, err := cmdutils.NewRuntime(s, slog.Default())
	if err != nil {
		return nil, err
	}

	if s.MetricsPort > 0 {
		go func() {
			addr := fmt.Sprintf("127.0.0.1:%d", s.MetricsPort)
			if err := telemetry.StartMetricsServer(addr, rt.Metrics.Handler()); err != nil {
				slog.Warn("Failed to start metrics server", "error", err)
			}
		}()
	}
	return rt, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	s := currentSettings()
	// Log lines would corrupt the screen; keep only the file sink.
	telemetry.InitLogger(s.Verbose, s.LogFile, true)

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	model := ui.NewAppModel(cmd.Context(), rt.Controller(), ui.AppOptions{
		Categories: s.Categories,
		Category:   s.Category,
		Logger:     rt.Logger,
	})
	return runApp(model)
}
