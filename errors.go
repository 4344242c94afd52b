package assetdump

import "fmt"

// Decode failures fall into four classes. Errors returned by the decoder wrap
// one of these sentinels, so callers can classify with errors.Is; the wrapped
// message carries the offending line text where one is available.
var (
	// ErrEndOfInput reports that the cursor was exhausted before an
	// expected token.
	ErrEndOfInput = fmt.Errorf("unexpected end of input")

	// ErrStructuralMismatch reports that an expected literal, keyword,
	// delimiter, or record name was not found.
	ErrStructuralMismatch = fmt.Errorf("structural mismatch")

	// ErrLexicalParse reports that a content token could not be parsed
	// under the requested scalar's lexical rules.
	ErrLexicalParse = fmt.Errorf("lexical parse failure")

	// ErrTrailingData reports unconsumed content after the root record and
	// its two trailing lines.
	ErrTrailingData = fmt.Errorf("trailing data after document")
)
