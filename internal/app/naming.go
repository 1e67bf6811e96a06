package app

import (
	"fmt"
	"path/filepath"

	"bitbucket.org/creachadair/stringset"

	"github.com/patrickprogramme/ttml2txt/internal/fsutil"
)

const transcriptExt = ".txt"

// outputNamer attribue les chemins de sortie du mode batch.
// Le premier fichier d'un identifiant reçoit "<id>.txt", les suivants
// "<id>-1.txt", "<id>-2.txt"... dans l'ordre des appels à Next.
// Sa durée de vie est celle d'un passage batch.
type outputNamer struct {
	dir    string
	counts map[string]int
	used   stringset.Set // noms déjà attribués, pour ne jamais écraser un transcript du même passage
}

func newOutputNamer(dir string) *outputNamer {
	return &outputNamer{
		dir:    dir,
		counts: make(map[string]int),
		used:   stringset.New(),
	}
}

// Next retourne le chemin de sortie du prochain fichier d'identifiant id.
func (n *outputNamer) Next(id string) string {
	base := fsutil.SanitizeFilename(id)
	for {
		count := n.counts[base]
		n.counts[base] = count + 1

		name := base
		if count > 0 {
			name = fmt.Sprintf("%s-%d", base, count)
		}
		if n.used.Contains(name) {
			// ex: un identifiant "abc-1" a déjà pris le nom
			continue
		}
		n.used.Add(name)
		return filepath.Join(n.dir, name+transcriptExt)
	}
}
