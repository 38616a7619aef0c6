package cmd

import (
	"fmt"

	"covsim/internal/cli"
	"covsim/internal/config"
	"covsim/internal/store"

	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage saved parameter sets",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the current parameters under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioDelete,
}

func init() {
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioShowCmd, scenarioDeleteCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func openStore() (*store.Store, error) {
	return store.Open(config.ScenarioDBPath())
}

func runScenarioSave(_ *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("  Saved scenario %q\n", args[0])
	return nil
}

func runScenarioList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	scenarios, err := s.List()
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Println("\n  No saved scenarios. Use `covsim scenario save NAME` to create one.")
		return nil
	}

	rows := make([][]string, 0, len(scenarios))
	for _, sc := range scenarios {
		rows = append(rows, []string{
			sc.Name,
			fmt.Sprintf("%d", sc.Months),
			cli.FormatAmount(sc.Premium),
			fmt.Sprintf("%dd", sc.CadenceDays),
			fmt.Sprintf("%dd", sc.PolicyDays),
			cli.FormatAmount(sc.Bootstrap),
			cli.FormatPercent(sc.CostPct),
			sc.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Months", "Premium", "Cadence", "Policy", "Bootstrap", "Cost", "Updated"},
		Rows:    rows,
	}))
	return nil
}

func runScenarioShow(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sc, err := s.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   sc.Name,
		Headers: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Months", fmt.Sprintf("%d", sc.Months)},
			{"Premium", cli.FormatAmount(sc.Premium)},
			{"Cadence", fmt.Sprintf("every %d days", sc.CadenceDays)},
			{"Policy duration", fmt.Sprintf("%d days", sc.PolicyDays)},
			{"Bootstrap", cli.FormatAmount(sc.Bootstrap)},
			{"Premium cost", cli.FormatPercent(sc.CostPct)},
		},
	}))
	fmt.Printf("\n  Run it with `covsim --scenario %s`\n", sc.Name)
	return nil
}

func runScenarioDelete(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Deleted scenario %q\n", args[0])
	return nil
}
