package subtitles

import (
	"github.com/patrickprogramme/ttml2txt/pkg/model"
)

// Phrase représente le texte d'un paragraphe <p> TTML retenu pour le transcript,
// avec son attribut begin éventuel.
type Phrase struct {
	Begin    model.Seconds // début du paragraphe (0 si absent ou illisible)
	HasBegin bool          // true si le paragraphe portait un attribut begin
	Text     string        // texte des <span>, normalisé (trim)
}

// Transcript représente le résultat de l'extraction d'un document TTML.
// L'ordre des phrases est celui des paragraphes dans le document source.
type Transcript struct {
	Phrases    []Phrase
	Timestamps bool // préfixer chaque ligne par [HH:MM:SS] quand begin est présent
}

// NewTranscript construit un Transcript à partir de phrases déjà prêtes.
// - pure function, pas d'I/O ni de parsing.
func NewTranscript(phrases []Phrase, timestamps bool) Transcript {
	return Transcript{
		Phrases:    phrases,
		Timestamps: timestamps,
	}
}
