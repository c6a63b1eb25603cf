package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the cclex release version; overridden at build time via
// -ldflags "-X github.com/clexlang/cclex/cmd/cclex/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cclex version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
