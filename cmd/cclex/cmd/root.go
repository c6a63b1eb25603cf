package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "cclex",
		Short:        "cclex",
		SilenceUsage: true,
		Long:         `CLI tool for lexing C11 (plus common GNU extensions) source files.`,
	}

	directory string
	noGNU     bool
	useRepr   bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory .cclex.yaml and include_dirs are resolved against")
	rootCmd.PersistentFlags().BoolVar(&noGNU, "strict-c11", false, "reject GNU-only keyword spellings, overriding .cclex.yaml")
	rootCmd.PersistentFlags().BoolVar(&useRepr, "repr", false, "render tokens with alecthomas/repr instead of the plain one-line form")
	return rootCmd.Execute()
}
