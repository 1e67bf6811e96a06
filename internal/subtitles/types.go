package subtitles

import (
	"errors"
)

var ErrMissingElement = errors.New("élément TTML introuvable")

// Options règle la construction du transcript.
type Options struct {
	IncludeTimestamps bool
}

// Noms locaux des éléments TTML parcourus (namespace ignoré).
const (
	elemBody = "body"
	elemDiv  = "div"
	elemP    = "p"
	elemSpan = "span"

	attrBegin = "begin"
)
