package export

import "errors"

// ErrEmptyDocument is returned when a document has no rows to render
var ErrEmptyDocument = errors.New("document has no rows")
