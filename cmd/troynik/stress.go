package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

var (
	stressTemperature float64
	stressHours       float64
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Interpolate one allowable stress value",
	Long: `Interpolate the allowable stress for steel 12Kh1MF at a given
metal temperature and total service life.

The value is interpolated between the tabulated points of the
RD 10-249-98 table. Combinations outside the tabulated region are
refused rather than extrapolated.

Examples:
  # Allowable stress at 545 C after 269142 h of service
  troynik stress -t 545 -H 269142

  # A tabulated point is returned exactly
  troynik stress -t 550 -H 100000`,
	Run: runStress,
}

func init() {
	rootCmd.AddCommand(stressCmd)

	stressCmd.Flags().Float64VarP(&stressTemperature, "temperature", "t", 0, "Metal temperature (C) [required]")
	stressCmd.Flags().Float64VarP(&stressHours, "hours", "H", 0, "Total service life (h) [required]")

	stressCmd.MarkFlagRequired("temperature")
	stressCmd.MarkFlagRequired("hours")
}

func runStress(cmd *cobra.Command, args []string) {
	t := rd10249.Steel12Kh1MF()

	v, ok := t.Query(stressTemperature, stressHours)
	if !ok {
		fmt.Println("Allowable stress undeterminable for the given temperature and service life")
		return
	}
	fmt.Printf("[sigma] = %.2f MPa for steel %s at %g C and %g h\n", v, t.Grade(), stressTemperature, stressHours)
}
