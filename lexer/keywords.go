package lexer

import "github.com/clexlang/cclex/token"

// keywords maps every recognized spelling — standard, C11, and every GNU
// double-underscore alternate — to its token, giving O(len) exact-match
// lookup via Go's built-in string-keyed map. A map keeps the ~70-entry
// table declarative and trivially auditable against the vocabulary
// list.
var keywords = map[string]token.TokenType{
	"auto": token.Auto, "break": token.Break, "case": token.Case,
	"char": token.Char, "const": token.Const, "__const": token.Const, "__const__": token.Const,
	"continue": token.Continue, "default": token.Default, "do": token.Do,
	"double": token.Double, "else": token.Else, "enum": token.Enum,
	"extern": token.Extern, "float": token.Float, "for": token.For,
	"goto": token.Goto, "if": token.If,
	"inline": token.Inline, "__inline": token.Inline, "__inline__": token.Inline,
	"int": token.Int, "long": token.Long, "register": token.Register,
	"restrict": token.Restrict, "__restrict": token.Restrict, "__restrict__": token.Restrict,
	"return": token.Return, "short": token.Short,
	"signed": token.Signed, "__signed": token.Signed, "__signed__": token.Signed,
	"sizeof": token.Sizeof, "static": token.Static, "struct": token.Struct,
	"switch": token.Switch, "typedef": token.Typedef,
	"typeof": token.Typeof, "__typeof": token.Typeof, "__typeof__": token.Typeof,
	"union": token.Union, "unsigned": token.Unsigned, "void": token.Void,
	"volatile": token.Volatile, "__volatile": token.Volatile, "__volatile__": token.Volatile,
	"while": token.While,

	"alignof": token.AlignofKw, "__alignof": token.AlignofKw, "__alignof__": token.AlignofKw,
	"asm": token.AsmKw, "__asm": token.AsmKw, "__asm__": token.AsmKw,

	"_Alignas": token.AlignasKw,
	"_Alignof": token.AlignofKw,
	"_Atomic":  token.AtomicKw,
	"_Bool":    token.BoolKw,
	"_Complex": token.ComplexKw, "__complex__": token.ComplexKw,
	"_Generic":       token.GenericKw,
	"_Noreturn":      token.NoreturnKw,
	"_Static_assert": token.StaticAssertKw,
	"_Thread_local":  token.ThreadLocalKw, "__thread": token.ThreadLocalKw,
	"_Nullable": token.NullableKw, "__nullable": token.NullableKw,
	"_Nonnull": token.NonnullKw, "__nonnull": token.NonnullKw,

	"__int128":  token.Int128Kw,
	"__label__": token.LabelKw,

	"__attribute__": token.AttributeMarker, "__attribute": token.AttributeMarker,
	"__extension__": token.ExtensionMarker,
	"__real":        token.ComplexRealMarker, "__real__": token.ComplexRealMarker,
	"__imag": token.ComplexImagMarker, "__imag__": token.ComplexImagMarker,
	"__builtin_va_arg":              token.BuiltinVaArgMarker,
	"__builtin_offsetof":            token.BuiltinOffsetofMarker,
	"__builtin_types_compatible_p":  token.BuiltinTypesCompatibleMarker,
}

// lookupKeyword reports the token for an exact keyword spelling, or
// (0, false) if lexeme is not one of the recognized spellings — in which
// case the caller falls through to identifier/type-name classification.
//
// $ is accepted anywhere in an identifier body, but no lexeme containing
// $ is ever looked up here — the scanner only calls lookupKeyword for
// lexemes already known not to contain $ (see scanIdentOrKeyword).
func lookupKeyword(lexeme string) (token.TokenType, bool) {
	t, ok := keywords[lexeme]
	return t, ok
}

// gnuOnlySpellings are the double-underscore alternates and GNU-only
// keyword-like spellings that strict-C11 mode (config's gnu_extensions:
// false) refuses to treat as keywords, falling them through to ordinary
// identifier classification instead.
var gnuOnlySpellings = map[string]bool{
	"__const": true, "__const__": true,
	"__inline": true, "__inline__": true,
	"__restrict": true, "__restrict__": true,
	"__signed": true, "__signed__": true,
	"__typeof": true, "__typeof__": true,
	"__volatile": true, "__volatile__": true,
	"__alignof": true, "__alignof__": true,
	"__asm": true, "__asm__": true,
	"__complex__": true, "__thread": true,
	"__nullable": true, "__nonnull": true,
	"__int128": true, "__label__": true,
	"__attribute__": true, "__attribute": true,
	"__extension__": true,
	"__real": true, "__real__": true,
	"__imag": true, "__imag__": true,
	"__builtin_va_arg": true, "__builtin_offsetof": true,
	"__builtin_types_compatible_p": true,
}
