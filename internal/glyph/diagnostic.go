package glyph

import (
	"fmt"
	"strings"
)

// Severity captures how impactful a diagnostic is. The front end only
// produces errors.
type Severity string

const SeverityError Severity = "error"

// DiagnosticKind is a stable tag identifying the class of a diagnostic.
type DiagnosticKind string

const (
	// Lexical
	KindUnterminatedString DiagnosticKind = "UnterminatedString"
	KindInvalidCharacter   DiagnosticKind = "InvalidCharacter"

	// Syntactic
	KindUnexpectedToken  DiagnosticKind = "UnexpectedToken"
	KindMissingToken     DiagnosticKind = "MissingToken"
	KindMaxDepthExceeded DiagnosticKind = "MaxDepthExceeded"
)

// Diagnostic describes one lexical or syntax error. It doubles as the error
// value passed around inside the parser.
type Diagnostic struct {
	Severity Severity
	Kind     DiagnosticKind
	Span     Span
	Message  string

	// Expected and Found are set for UnexpectedToken and MissingToken.
	Expected []TokenKind
	Found    TokenKind
}

// Error formats the diagnostic as "line:column: error: message".
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Span, d.Severity, d.Message)
}

func newUnterminatedString(span Span) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Kind:     KindUnterminatedString,
		Span:     span,
		Message:  "unterminated string literal",
	}
}

func newInvalidCharacter(r rune, span Span) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Kind:     KindInvalidCharacter,
		Span:     span,
		Message:  fmt.Sprintf("invalid character %q", r),
	}
}

// newSyntaxError reports that want was expected where found sits. want is
// the human readable form of expected, e.g. "expression" or "';' after
// variable declaration".
func newSyntaxError(found Token, want string, expected ...TokenKind) *Diagnostic {
	kind := KindUnexpectedToken
	if found.Kind == TokenEOF {
		kind = KindMissingToken
	}
	return &Diagnostic{
		Severity: SeverityError,
		Kind:     kind,
		Span:     found.Span,
		Message:  fmt.Sprintf("expected %s, found %s", want, found.describe()),
		Expected: expected,
		Found:    found.Kind,
	}
}

func newMaxDepthExceeded(at Token, limit int) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Kind:     KindMaxDepthExceeded,
		Span:     at.Span,
		Message:  fmt.Sprintf("nesting exceeds the maximum depth of %d", limit),
		Found:    at.Kind,
	}
}

// describeKinds renders a list of kinds as "'a', 'b' or 'c'".
func describeKinds(kinds []TokenKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.describe()
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
