package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := &cobra.Command{
		Use:     "snapdiff",
		Short:   "Compare two filesystem snapshots",
		Version: version + " (" + commit + ")",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	root.AddCommand(newCompareCmd())

	if err := root.Execute(); err != nil {
		fmt.Println("Error: " + err.Error())
		return 1
	}
	return 0
}
