package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Lex one or more files or directories and report lexical errors, without printing tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return errors.New("need at least one file argument")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		paths, err := expandPaths(args, cfg)
		if err != nil {
			return err
		}

		results, err := lexFiles(paths, lexerOptions(cfg))
		if err != nil {
			return err
		}

		failed := false
		for _, res := range results {
			if res.err == nil {
				continue
			}
			failed = true
			fmt.Println(res.err)
		}
		if failed {
			return errors.New("lexical errors found")
		}
		fmt.Printf("%d file(s) OK\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
