package confedit

import (
	"errors"
	"fmt"
)

// ErrNoPath indicates a document constructed without a file path (e.g. via
// Parse) can not be saved.
var ErrNoPath = errors.New("document has no path")

// MalformedLineError reports a raw line that failed the config grammar
// during Load. Load aborts on the first malformed line, a partial document
// is never returned.
type MalformedLineError struct {
	Path string // file the line was read from
	Line int    // 1-based line number
	Col  int    // 1-based column of the syntax error
	Msg  string // parser message
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Msg)
}

// MultipleValuesError is returned by Set and UnSet when more than one
// variable matches the key. The document is left unmodified. Use SetAll or
// UnSetAll to operate on all matches.
type MultipleValuesError struct {
	Key string
}

func (e *MultipleValuesError) Error() string {
	return fmt.Sprintf("multiple values for %q, use SetAll or UnSetAll instead", e.Key)
}
