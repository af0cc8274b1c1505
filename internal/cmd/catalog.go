package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/pixeltex/internal/store"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <file>",
	Short: "List the contents of a swatch catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	reader, err := store.OpenReader(args[0])
	if err != nil {
		return err
	}
	defer reader.Close()

	meta, err := reader.Metadata()
	if err != nil {
		return err
	}
	entries, err := reader.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if meta.Name != "" {
		fmt.Fprintf(out, "catalog: %s (version %s)\n", meta.Name, meta.Version)
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%-9s seed=%-8d frame=%d %dx%d scale=%d variation=%.2f\n",
			e.Pattern, e.Seed, e.Frame, e.Width, e.Height, e.Scale, e.Variation)
	}
	fmt.Fprintf(out, "%d swatches\n", len(entries))
	return nil
}
