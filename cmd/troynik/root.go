package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpenrose85-eng/troynik/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "troynik",
	Short: "Stub joint strength checks for boiler headers",
	Long: `troynik - stub joint strength checker

A CLI tool for checking welded stub (branch pipe) joints on boiler
headers per RD 10-249-98.

The check covers:
  - Allowable stress interpolation from the 12Kh1MF material table
  - Minimum stub wall and compensating reinforcement area
  - Opening strength factors for the unreinforced and reinforced joint
  - Reduced stress at the opening and the resulting safety factor

All calculations follow RD 10-249-98 (boiler strength norms).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("troynik v%s\n", version.Version)
		fmt.Println("Stub joint strength checker, RD 10-249-98")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  calc     - run the eight-step joint strength check")
		fmt.Println("  stress   - interpolate one allowable stress value")
		fmt.Println("  table    - print or chart the allowable stress table")
		fmt.Println("  version  - print the version number")
		fmt.Println()
		fmt.Println("Use 'troynik --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
