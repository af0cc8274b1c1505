package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/pixeltex/internal/colorutil"
	"github.com/MeKo-Tech/pixeltex/internal/palette"
	"github.com/MeKo-Tech/pixeltex/internal/ramp"
	"github.com/spf13/cobra"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the registered color ramps",
	Long:  `List every registered 5-stop ramp with its stop colors and usage notes.`,
	RunE:  runPalettes,
}

func init() {
	rootCmd.AddCommand(palettesCmd)
}

func runPalettes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, name := range palette.RampNames() {
		r := palette.Ramps[name]
		fmt.Fprintf(out, "%s:\n", name)
		for _, stop := range []struct {
			label string
			entry ramp.Entry
		}{
			{"highlight", r.Highlight},
			{"light", r.Light},
			{"mid", r.Mid},
			{"dark", r.Dark},
			{"shadow", r.Shadow},
		} {
			fmt.Fprintf(out, "  %-9s %s  %s\n", stop.label, stop.entry.Hex, stop.entry.Usage)
		}
	}

	fmt.Fprintln(out, "named colors:")
	for _, name := range palette.NamedColors() {
		fmt.Fprintf(out, "  %-11s %s\n", name, colorutil.ToHex(palette.Named[name], false))
	}
	return nil
}
