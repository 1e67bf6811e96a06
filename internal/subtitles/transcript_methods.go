package subtitles

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/ttml2txt/internal/fsutil"
)

// paragraphSep sépare deux lignes du transcript (une ligne vide).
const paragraphSep = "\n\n"

// Line retourne la ligne de transcript de la phrase, préfixée par
// "[HH:MM:SS] " si withTimestamp est vrai et que la phrase a un begin.
func (p Phrase) Line(withTimestamp bool) string {
	if withTimestamp && p.HasBegin {
		return "[" + p.Begin.TimestampHHMMSS() + "] " + p.Text
	}
	return p.Text
}

// Lines retourne les lignes du transcript dans l'ordre du document.
func (t Transcript) Lines() []string {
	out := make([]string, 0, len(t.Phrases))
	for _, p := range t.Phrases {
		out = append(out, p.Line(t.Timestamps))
	}
	return out
}

// Len retourne le nombre de lignes du transcript.
func (t Transcript) Len() int {
	return len(t.Phrases)
}

// String retourne le transcript sérialisé : lignes séparées par une ligne vide,
// sans newline final. Un transcript sans phrase donne "".
func (t Transcript) String() string {
	return strings.Join(t.Lines(), paragraphSep)
}

// Save écrit le transcript (UTF-8) dans path, même s'il est vide.
// L'écriture est atomique : un fichier existant est remplacé d'un bloc.
func (t Transcript) Save(path string) error {
	if err := fsutil.WriteFileAtomic(path, []byte(t.String()), 0o644); err != nil {
		return fmt.Errorf("échec écriture fichier %s : %w", path, err)
	}
	return nil
}
