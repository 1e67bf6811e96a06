package subtitles

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/ttml2txt/pkg/model"
)

// BuildTranscript parse un document TTML et en extrait le transcript.
//
// Chemin parcouru : premier <body> du document, son premier <div> enfant, puis
// les <p> enfants de ce <div>. Pour chaque <p>, seuls les <span> enfants directs
// sont lus ; un paragraphe sans span ou dont le texte est vide est ignoré.
//
// Erreurs : ErrMalformedXML si le document n'est pas du XML valide,
// ErrMissingElement si <body> ou <div> est absent.
func BuildTranscript(data []byte, opts Options) (Transcript, error) {
	var empty Transcript

	root, err := ParseTTML(data)
	if err != nil {
		return empty, err
	}

	body := root.Find(elemBody)
	if body == nil {
		return empty, fmt.Errorf("%w: <%s>", ErrMissingElement, elemBody)
	}
	div := body.Child(elemDiv)
	if div == nil {
		return empty, fmt.Errorf("%w: <%s> sous <%s>", ErrMissingElement, elemDiv, elemBody)
	}

	var phrases []Phrase
	for _, p := range div.ChildrenNamed(elemP) {
		if ph, ok := phraseFromParagraph(p); ok {
			phrases = append(phrases, ph)
		}
	}
	return NewTranscript(phrases, opts.IncludeTimestamps), nil
}

// phraseFromParagraph retourne false si le paragraphe ne produit aucun texte.
func phraseFromParagraph(p *Node) (Phrase, bool) {
	spans := p.ChildrenNamed(elemSpan)
	if len(spans) == 0 {
		return Phrase{}, false
	}

	var b strings.Builder
	for _, span := range spans {
		b.WriteString(ExtractText(span))
		b.WriteByte(' ')
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return Phrase{}, false
	}

	ph := Phrase{Text: text}
	if begin, ok := p.Attr(attrBegin); ok {
		ph.HasBegin = true
		ph.Begin = model.ParseTimecode(begin)
	}
	return ph, true
}
