// Package locator recherche les fichiers TTML d'une arborescence et dérive,
// pour chacun, l'identifiant utilisé pour nommer le transcript de sortie.
package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"bitbucket.org/creachadair/stringset"
)

// Valeurs par défaut (cache TTML d'Apple Podcasts).
const (
	DefaultMarker    = "PodcastContent"
	DefaultExtension = ".ttml"
)

var ErrNoMarker = errors.New("marqueur d'identifiant vide")

// Located décrit un fichier trouvé et son identifiant.
type Located struct {
	Path string // chemin complet du fichier
	ID   string // texte qui suit le marqueur jusqu'au prochain séparateur
}

// Matcher dérive un identifiant à partir d'un chemin.
type Matcher struct {
	marker string
	re     *regexp.Regexp
}

// NewMatcher compile le motif `<marker>([^/\\]+)`.
func NewMatcher(marker string) (*Matcher, error) {
	if marker == "" {
		return nil, ErrNoMarker
	}
	re, err := regexp.Compile(regexp.QuoteMeta(marker) + `([^/\\]+)`)
	if err != nil {
		return nil, fmt.Errorf("compile marker %q: %w", marker, err)
	}
	return &Matcher{marker: marker, re: re}, nil
}

// ID retourne l'identifiant contenu dans path, et false si le marqueur est
// absent (ou immédiatement suivi d'un séparateur).
func (m *Matcher) ID(path string) (string, bool) {
	grp := m.re.FindStringSubmatch(path)
	if grp == nil {
		return "", false
	}
	return grp[1], true
}

// Find parcourt root récursivement (ordre lexical) et retourne les fichiers dont
// le nom se termine par une des extensions exts et dont le chemin contient le
// marqueur. Les fichiers sans marqueur sont exclus du résultat.
//
// Une racine absente ou illisible est une erreur ; un sous-répertoire illisible
// est simplement ignoré.
func Find(root, marker string, exts []string) ([]Located, error) {
	m, err := NewMatcher(marker)
	if err != nil {
		return nil, err
	}
	if len(exts) == 0 {
		exts = []string{DefaultExtension}
	}
	extSet := stringset.New(exts...)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("répertoire de recherche %s : %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s n'est pas un répertoire", root)
	}

	var out []Located
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// sous-répertoire illisible : on saute
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasExtension(d.Name(), extSet) {
			return nil
		}
		id, ok := m.ID(path)
		if !ok {
			return nil
		}
		out = append(out, Located{Path: path, ID: id})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parcours de %s : %w", root, err)
	}
	return out, nil
}

// hasExtension cherche dans exts chaque suffixe de name commençant par un point
// ("a.ttml.xml" -> ".ttml.xml", puis ".xml"). Comparaison sensible à la casse.
func hasExtension(name string, exts stringset.Set) bool {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' && exts.Contains(name[i:]) {
			return true
		}
	}
	return false
}
