package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpenrose85-eng/troynik/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of troynik",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("troynik v%s\n", version.Version)
		fmt.Println("Stub joint strength checker per RD 10-249-98")
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
