package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/crowdsentry/sentinel/pkg/config"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List available scenarios",
	Long:  `List the built-in scenario and every scenario file discovered in the scenario directory`,
	RunE:  listScenarios,
}

func listScenarios(_ *cobra.Command, _ []string) error {
	infos, err := config.Discover(scenarioDir)
	if err != nil {
		return fmt.Errorf("failed to discover scenarios: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSOURCE\tUNITS\tCAMERAS\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t------\t-----\t-------\t-----------")

	def := config.Default()
	_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
		def.Name, "built-in", len(def.Units), len(def.Cameras), def.Description)

	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			info.Scenario.Name,
			info.Path,
			len(info.Scenario.Units),
			len(info.Scenario.Cameras),
			info.Scenario.Description,
		)
	}

	return w.Flush()
}
