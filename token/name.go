package token

// Name is an interned identifier. Two Names compare equal with == iff they
// were interned from the same lexeme by the same Interner.
type Name struct {
	id   int
	text string
}

func (n Name) String() string { return n.text }

// ID returns the monotonically increasing id assigned when n was first
// interned. Parsers use this as a cheap map/array key for symbol tables.
func (n Name) ID() int { return n.id }

// Interner hands out a stable Name per distinct lexeme, assigning fresh
// ids in first-sight order. It is not safe for concurrent use; a Lexer
// owns exactly one Interner for the duration of one parse.
type Interner struct {
	next  int
	names map[string]Name
}

// NewInterner returns an empty Interner whose first Name gets id 0.
func NewInterner() *Interner {
	return &Interner{names: make(map[string]Name)}
}

// Intern returns the Name for text, creating and caching one on first
// sight. Repeated calls with the same text return the identical Name.
func (in *Interner) Intern(text string) Name {
	if n, ok := in.names[text]; ok {
		return n
	}
	n := Name{id: in.next, text: text}
	in.next++
	in.names[text] = n
	return n
}

// Fresh mints a new Name carrying text without consulting or updating the
// intern table. Used by callers (e.g. the parser) that need a unique Name
// not tied to lexeme equality, per the fresh-name() callback of the
// upward interface.
func (in *Interner) Fresh(text string) Name {
	n := Name{id: in.next, text: text}
	in.next++
	return n
}
