// Package diag implements the lexer's diagnostic surface: a Position-
// tagged Error and the two-line "Lexical Error !" rendering a parser
// reports back to its caller.
package diag

import (
	"fmt"
	"strings"

	"github.com/clexlang/cclex/token"
)

// Preamble is the first line of every rendered lexical error.
const Preamble = "Lexical Error !"

// Error is one lexical error: a Position plus a one-line detail message
// naming the grammar rule that failed to match.
type Error struct {
	Pos     token.Position
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s\n%s: %s\n%s", Preamble, e.Pos, e.Message, Preamble)
}

// Detail renders the two-line user-visible form: the Preamble summary
// line, then a detail line prefixed with the source Position.
func (e Error) Detail() string {
	return fmt.Sprintf("%s\n%s: %s", Preamble, e.Pos, e.Message)
}

// Errors aggregates every Error raised during one lex. A lexical error
// is fatal to the parse, so in practice this holds at most one Error,
// but the aggregate form keeps the sink interface uniform for callers
// that choose to keep lexing after logging (e.g. the CLI's best-effort
// `tokens` dump).
type Errors struct {
	List []Error
}

func (e Errors) Error() string {
	var b strings.Builder
	b.WriteString("lexical errors:\n\n")
	for _, err := range e.List {
		fmt.Fprintf(&b, "%s: %s\n", err.Pos, err.Message)
	}
	return b.String()
}

// Sink receives diagnostics as the lexer produces them. The lexer never
// panics on malformed input; it reports through Sink and, for a lexical
// error, stops — there is no resynchronization.
type Sink interface {
	Report(Error)
}

// Collector is the default Sink: it appends every Error it is given and
// is itself a valid error (via Errors) once lexing stops.
type Collector struct {
	Errors Errors
}

func (c *Collector) Report(e Error) {
	c.Errors.List = append(c.Errors.List, e)
}

// Err returns the accumulated errors as an error, or nil if none were
// reported.
func (c *Collector) Err() error {
	if len(c.Errors.List) == 0 {
		return nil
	}
	return c.Errors
}
