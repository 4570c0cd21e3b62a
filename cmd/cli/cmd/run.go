package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/crowdsentry/sentinel/pkg/config"
	"github.com/crowdsentry/sentinel/pkg/console"
	"github.com/crowdsentry/sentinel/pkg/logger"
	"github.com/crowdsentry/sentinel/pkg/ops"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the operations center",
	Long:  `Start the operations center with a scenario and its simulation feed, rendering a live status board until interrupted`,
	RunE:  runCenter,
}

func init() {
	runCmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "scenario file to load (YAML)")
	runCmd.Flags().Duration("board-interval", 5*time.Second, "minimum interval between status board redraws")
}

func runCenter(cmd *cobra.Command, _ []string) error {
	scenario, err := selectScenario()
	if err != nil {
		return fmt.Errorf("failed to select scenario: %w", err)
	}

	center, err := ops.New(scenario)
	if err != nil {
		return fmt.Errorf("failed to create operations center: %w", err)
	}
	defer center.Shutdown()

	boardInterval, err := cmd.Flags().GetDuration("board-interval")
	if err != nil {
		return err
	}

	board := console.NewBoard(boardInterval)
	if err := board.Attach(center); err != nil {
		return fmt.Errorf("failed to attach status board: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Infof("starting operations center with scenario %s", scenario.Name)
	center.Start(ctx)
	board.Render(center.Snapshot(), "startup")

	<-sigChan
	logger.Warn("received interrupt signal, shutting down...")
	cancel()
	center.Shutdown()

	logger.Infof("operations center stopped")
	return nil
}

// selectScenario resolves the scenario to run: the --scenario flag if
// given, otherwise an interactive pick over discovered files, falling
// back to the built-in default.
func selectScenario() (*config.Scenario, error) {
	if scenarioFile != "" {
		return config.Load(scenarioFile)
	}

	infos, err := config.Discover(scenarioDir)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return config.Default(), nil
	}

	const builtin = "festival-default (built-in)"
	choices := []string{builtin}
	byChoice := make(map[string]string, len(infos))
	for _, info := range infos {
		label := fmt.Sprintf("%s - %s", info.Scenario.Name, info.Scenario.Description)
		choices = append(choices, label)
		byChoice[label] = info.Path
	}

	var picked string
	prompt := &survey.Select{
		Message: "Select a scenario:",
		Options: choices,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, err
	}

	if picked == builtin {
		return config.Default(), nil
	}
	return config.Load(byChoice[picked])
}
