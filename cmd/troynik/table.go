package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alpenrose85-eng/troynik/internal/diagram"
	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

var (
	tableChart  bool
	tableHeight int
	tablePNG    string
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the 12Kh1MF allowable stress table",
	Long: `Print the RD 10-249-98 allowable stress table for steel 12Kh1MF
as a grid of tabulated values, one row per temperature and one column
per service life. A dash marks combinations the norm does not tabulate.

Examples:
  # Print the grid
  troynik table

  # Draw the isochronous curves as an ASCII chart
  troynik table --chart --height 16

  # Render the curves to a PNG file
  troynik table --png stress.png`,
	Run: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().BoolVar(&tableChart, "chart", false, "Draw an ASCII chart instead of the grid")
	tableCmd.Flags().IntVar(&tableHeight, "height", 12, "ASCII chart height in rows")
	tableCmd.Flags().StringVar(&tablePNG, "png", "", "Write the chart to the given image file")
}

func runTable(cmd *cobra.Command, args []string) {
	t := rd10249.Steel12Kh1MF()

	if tablePNG != "" {
		if err := diagram.SavePNG(t, tablePNG); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Chart written to %s\n", tablePNG)
		return
	}

	if tableChart {
		fmt.Print(diagram.Ascii(t, tableHeight))
		return
	}

	fmt.Println()
	fmt.Printf("Allowable stress [sigma], MPa - steel %s (RD 10-249-98)\n", t.Grade())
	fmt.Println()

	durations := t.Durations()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  T, C")
	for _, d := range durations {
		fmt.Fprintf(w, "\t%.0f h", d)
	}
	fmt.Fprintln(w)
	for i, temp := range t.Temperatures() {
		fmt.Fprintf(w, "  %.0f", temp)
		for j := range durations {
			if v, ok := t.Cell(i, j); ok {
				fmt.Fprintf(w, "\t%.0f", v)
			} else {
				fmt.Fprintf(w, "\t-")
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()
}
