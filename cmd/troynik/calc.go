package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alpenrose85-eng/troynik/internal/calc/stub"
	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

var (
	// Geometry inputs
	calcMainDiameter float64
	calcMainWall     float64
	calcStubDiameter float64
	calcStubWall     float64

	// Service conditions
	calcPressure    float64
	calcTemperature float64
	calcElapsed     int
	calcPlanned     int
	calcCorrosion   float64
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run the stub joint strength check",
	Long: `Run the eight-step strength check of a welded stub joint on a
boiler header per RD 10-249-98 and print the full derivation.

The allowable stress is interpolated from the 12Kh1MF table for the
summed elapsed and planned service life. The flag defaults reproduce
the reference case from the method description.

Examples:
  # Reference case (325x38 header, 93x21.5 stub, 14 MPa, 545 C)
  troynik calc

  # Same joint at a lower pressure, with a corrosion allowance
  troynik calc -p 10 -c 2

  # A different joint
  troynik calc -D 426 -s 50 -d 133 -w 28 -p 25.5 -t 520 --elapsed 0 --planned 200000`,
	Run: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	// Geometry flags
	calcCmd.Flags().Float64VarP(&calcMainDiameter, "main-diameter", "D", 325, "Header outer diameter D_a (mm)")
	calcCmd.Flags().Float64VarP(&calcMainWall, "main-wall", "s", 38, "Header wall thickness s (mm)")
	calcCmd.Flags().Float64VarP(&calcStubDiameter, "stub-diameter", "d", 93, "Stub outer diameter d_a (mm)")
	calcCmd.Flags().Float64VarP(&calcStubWall, "stub-wall", "w", 21.5, "Stub wall thickness s_s (mm)")

	// Service condition flags
	calcCmd.Flags().Float64VarP(&calcPressure, "pressure", "p", 14, "Design pressure p (MPa)")
	calcCmd.Flags().Float64VarP(&calcTemperature, "temperature", "t", 545, "Design metal temperature T (C)")
	calcCmd.Flags().IntVar(&calcElapsed, "elapsed", 219142, "Elapsed service life (h)")
	calcCmd.Flags().IntVar(&calcPlanned, "planned", 50000, "Planned further service life (h)")
	calcCmd.Flags().Float64VarP(&calcCorrosion, "corrosion", "c", 0, "Corrosion allowance c (mm)")
}

func runCalc(cmd *cobra.Command, args []string) {
	table := rd10249.Steel12Kh1MF()

	in := stub.Input{
		MainOuterDiameterMM: calcMainDiameter,
		MainWallMM:          calcMainWall,
		StubOuterDiameterMM: calcStubDiameter,
		StubWallMM:          calcStubWall,
		PressureMPa:         calcPressure,
		TemperatureC:        calcTemperature,
		ElapsedHours:        calcElapsed,
		PlannedHours:        calcPlanned,
		CorrosionMM:         calcCorrosion,
	}

	result, err := stub.Calculate(in, table)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("===============================================================")
	fmt.Println("     STUB JOINT STRENGTH CHECK - RD 10-249-98")
	fmt.Println("===============================================================")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("---------------------------------------------------------------")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Header outer diameter (D_a):\t%g mm\n", in.MainOuterDiameterMM)
	fmt.Fprintf(w, "  Header wall (s):\t%g mm\n", in.MainWallMM)
	fmt.Fprintf(w, "  Stub outer diameter (d_a):\t%g mm\n", in.StubOuterDiameterMM)
	fmt.Fprintf(w, "  Stub wall (s_s):\t%g mm\n", in.StubWallMM)
	fmt.Fprintf(w, "  Design pressure (p):\t%g MPa\n", in.PressureMPa)
	fmt.Fprintf(w, "  Metal temperature (T):\t%g C\n", in.TemperatureC)
	fmt.Fprintf(w, "  Corrosion allowance (c):\t%g mm\n", in.CorrosionMM)
	fmt.Fprintf(w, "  Steel grade:\t%s\n", table.Grade())
	fmt.Fprintf(w, "  Total service life:\t%d h\n", result.TotalHours)
	w.Flush()
	fmt.Println()

	fmt.Println("DERIVATION:")
	fmt.Println("---------------------------------------------------------------")
	for _, st := range result.Steps {
		value := fmt.Sprintf("%.4g", st.Value)
		if st.Unit != "" {
			value += " " + st.Unit
		}
		fmt.Printf("  %d. %s = %s\n", st.Number, st.Title, value)
		fmt.Printf("     = %s\n", st.Formula)
	}
	fmt.Println()

	fmt.Println("SUMMARY:")
	fmt.Println("---------------------------------------------------------------")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range result.Summary {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", row.Parameter, row.Value, row.Status)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("VERDICT:")
	fmt.Println("---------------------------------------------------------------")
	fmt.Printf("  %s\n", result.Notes)
	fmt.Println()
}
