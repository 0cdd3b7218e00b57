package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jurisdictionsCmd = &cobra.Command{
	Use:   "jurisdictions",
	Short: "Print the active jurisdiction risk sets",
	Long: `Print the high-risk and monitored jurisdiction sets the risk
aggregator uses. The built-in sets apply unless
WATCHGATE_JURISDICTIONS_FILE points at a YAML override.`,
	Args: cobra.NoArgs,
	RunE: runJurisdictions,
}

func runJurisdictions(cmd *cobra.Command, args []string) error {
	sets, err := loadSets()
	if err != nil {
		return fmt.Errorf("load jurisdiction sets: %w", err)
	}

	if cfg.JurisdictionFile != "" {
		fmt.Printf("Loaded from %s\n\n", cfg.JurisdictionFile)
	}

	fmt.Println("High-risk (score +20):")
	for _, country := range sets.HighRisk() {
		fmt.Printf("  - %s\n", country)
	}

	fmt.Println("\nMonitored (score +10):")
	for _, country := range sets.Monitored() {
		fmt.Printf("  - %s\n", country)
	}
	return nil
}
