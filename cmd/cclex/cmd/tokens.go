package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/clexlang/cclex/diag"
	"github.com/clexlang/cclex/lexer"
	"github.com/clexlang/cclex/token"
)

// fileResult is one file's outcome: its token stream (possibly partial)
// and whatever lexical error stopped it.
type fileResult struct {
	path string
	toks []token.Token
	err  error
}

func lexFile(path string, opts []lexer.Option) fileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}
	var sink diag.Collector
	toks := lexer.All(path, src, nil, &sink, opts...)
	return fileResult{path: path, toks: toks, err: sink.Err()}
}

// lexFiles lexes every path concurrently, bounded by GOMAXPROCS, and
// returns results in the same order as paths regardless of completion
// order.
func lexFiles(paths []string, opts []lexer.Option) ([]fileResult, error) {
	results := make([]fileResult, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = lexFile(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <path>...",
	Short: "Lex one or more files or directories and print the token stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return fmt.Errorf("need at least one file argument")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Format == "repr" {
			useRepr = true
		}

		paths, err := expandPaths(args, cfg)
		if err != nil {
			return err
		}

		runID := uuid.Must(uuid.NewV4())
		logger := logrus.StandardLogger()
		logger.WithField("run", runID).WithField("files", len(paths)).Debug("lexing")

		results, err := lexFiles(paths, lexerOptions(cfg))
		if err != nil {
			return err
		}

		for _, res := range results {
			if len(paths) > 1 {
				fmt.Printf("=== %s ===\n", res.path)
			}
			for _, tok := range res.toks {
				printToken(tok)
			}
			if res.err != nil {
				logger.WithField("run", runID).WithField("file", res.path).Error(res.err)
			}
		}
		return nil
	},
}

func printToken(tok token.Token) {
	if useRepr {
		repr.Println(tok)
		return
	}
	if lex := tok.Lexeme(); lex != "" {
		fmt.Printf("%s\t%s\t%q\n", tok.Pos, tok.Type, lex)
		return
	}
	fmt.Printf("%s\t%s\t%q\n", tok.Pos, tok.Type, describePayload(tok))
}

func describePayload(tok token.Token) string {
	switch tok.Type {
	case token.Identifier, token.TypeIdent:
		return tok.Name.String()
	case token.IntLit:
		return tok.Int.Value.String()
	case token.FloatLit:
		return tok.Float.Raw
	case token.CharLit:
		return string(tok.Char.CodePoints)
	case token.StringLit:
		return string(tok.Str.Decoded)
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
