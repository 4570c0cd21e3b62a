package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crowdsentry/sentinel/pkg/logger"
)

var (
	cfgFile      string
	scenarioDir  string
	scenarioFile string
	logLevel     string
	noColor      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "Event-safety operations center",
	Long: `Sentinel is a situational-awareness coordination core for
event-safety operations centers: it tracks field units, incidents,
alerts, and operator messages, and drives a simulated telemetry and
detection feed against them.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sentinel/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&scenarioDir, "scenario-dir", "scenarios", "directory scanned for scenario files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	logger.SetLevel(logger.ParseLevel(logLevel))
	logger.SetNoColor(noColor)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("$HOME/.sentinel")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("sentinel")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	_ = viper.ReadInConfig()

	if v := viper.GetString("scenario_dir"); v != "" && !rootCmd.PersistentFlags().Changed("scenario-dir") {
		scenarioDir = v
	}
}
