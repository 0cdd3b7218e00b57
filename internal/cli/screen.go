package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"watchgate/internal/domainintel"
	"watchgate/internal/jurisdiction"
	"watchgate/internal/screening"
	"watchgate/internal/watchlist"
)

var (
	screenCountry   string
	screenDomain    string
	screenThreshold int
	screenLists     []string
	screenTimeout   time.Duration
)

var screenCmd = &cobra.Command{
	Use:   "screen <name>",
	Short: "Screen a name against the configured watchlists",
	Long: `Screen a name against the configured watchlists and print the match
sets, the risk assessment, and optional domain registration signals.

Sources that cannot be fetched are skipped with a warning on stderr;
screening continues with the remaining sources.

Examples:
  watchgate screen "John Smith"
  watchgate screen "John Smith" --country "Panama"
  watchgate screen "Acme Exports Ltd" --domain acme-exports.com
  watchgate screen "John Smith" --threshold 90 --lists ofac`,
	Args: cobra.ExactArgs(1),
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().StringVarP(&screenCountry, "country", "c", "", "counterparty country for jurisdiction risk")
	screenCmd.Flags().StringVarP(&screenDomain, "domain", "d", "", "counterparty domain for WHOIS signals")
	screenCmd.Flags().IntVarP(&screenThreshold, "threshold", "t", 0, "match threshold 1-100 (default 85)")
	screenCmd.Flags().StringSliceVar(&screenLists, "lists", []string{"ofac", "un"}, "watchlists to screen (ofac, un)")
	screenCmd.Flags().DurationVar(&screenTimeout, "timeout", 2*time.Minute, "overall screening timeout")
}

func runScreen(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), screenTimeout)
	defer cancel()

	loaders, err := buildLoaders()
	if err != nil {
		return err
	}

	sets, err := loadSets()
	if err != nil {
		return fmt.Errorf("load jurisdiction sets: %w", err)
	}

	threshold := screenThreshold
	if threshold == 0 {
		threshold = cfg.MatchThreshold
	}
	if verbose {
		effective := threshold
		if effective <= 0 || effective > 100 {
			effective = screening.DefaultThreshold
		}
		fmt.Fprintf(os.Stderr, "screening against %d list(s) at threshold %d\n", len(loaders), effective)
	}

	var intel domainintel.Lookup
	if screenDomain != "" {
		intel = domainintel.NewWHOIS(cfg.WHOISHost, cfg.WHOISTimeout)
	}

	svc := screening.NewService(
		screening.NewMatcher(threshold),
		screening.NewAggregator(sets),
		loaders,
		intel,
		nil,
		nil,
		nil,
	)

	result, err := svc.Screen(ctx, screening.ScreenRequest{
		Query:   args[0],
		Country: screenCountry,
		Domain:  screenDomain,
	})
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}

	renderResult(result)
	return nil
}

func buildLoaders() ([]watchlist.Loader, error) {
	var loaders []watchlist.Loader
	for _, list := range screenLists {
		switch list {
		case "ofac":
			loaders = append(loaders, watchlist.NewOFACLoader(cfg.OFACURL, nil))
		case "un":
			loaders = append(loaders, watchlist.NewUNLoader(cfg.UNURL, nil))
		default:
			return nil, fmt.Errorf("unknown watchlist %q (expected ofac or un)", list)
		}
	}
	if len(loaders) == 0 {
		return nil, fmt.Errorf("no watchlists selected")
	}
	return loaders, nil
}

func loadSets() (jurisdiction.Sets, error) {
	if cfg.JurisdictionFile != "" {
		return jurisdiction.LoadFile(cfg.JurisdictionFile)
	}
	return jurisdiction.Default(), nil
}

func renderResult(result *screening.ScreenResult) {
	fmt.Printf("Screening %q (run %s)\n\n", result.Query, result.RunID)

	for _, src := range result.Sources {
		if src.Skipped {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", src.Warning)
			fmt.Printf("%s: skipped\n\n", src.Source)
			continue
		}
		if !src.Matches.Hit() {
			fmt.Printf("%s: no matches\n\n", src.Source)
			continue
		}
		fmt.Printf("%s: %d match(es)\n", src.Source, len(src.Matches))
		for _, m := range src.Matches {
			fmt.Printf("  %3d  %s\n", m.Score, m.Name)
		}
		fmt.Println()
	}

	fmt.Printf("Indicative risk score: %d / 100\n", result.Assessment.Score)
	if len(result.Assessment.Factors) > 0 {
		fmt.Println("Risk drivers:")
		for _, factor := range result.Assessment.Factors {
			fmt.Printf("  - %s\n", factor)
		}
	} else {
		fmt.Println("No material public risk factors identified.")
	}

	if result.Domain != nil {
		fmt.Printf("\nDomain %s: %s\n", result.Domain.Domain, result.Domain.Status)
		if result.Domain.Detail != "" {
			fmt.Printf("  %s\n", result.Domain.Detail)
		}
		for key, value := range result.Domain.Signals {
			fmt.Printf("  %s: %s\n", key, value)
		}
	}
}
