package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/patrickprogramme/ttml2txt/internal/fsutil"
)

// ValidateCacheDir vérifie de manière statique le répertoire de recherche du mode batch.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) ValidateCacheDir() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	// assure que le chemin est résolu
	c.ResolveCacheDir()

	p := strings.TrimSpace(c.CacheDir)
	info, serr := os.Stat(p)
	if serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("le répertoire du cache TTML n'existe pas : %s", p))
			return warnings, nil
		}
		return warnings, fmt.Errorf("impossible d'accéder au répertoire %s : %w", p, serr)
	}
	if !info.IsDir() {
		return warnings, fmt.Errorf("le chemin du cache TTML n'est pas un répertoire : %s", p)
	}

	empty, eerr := fsutil.IsDirEmpty(p)
	if eerr != nil {
		return warnings, fmt.Errorf("échec lors de la vérification du répertoire %s : %w", p, eerr)
	}
	if empty {
		warnings = append(warnings, fmt.Sprintf("le répertoire du cache TTML est vide : %s", p))
	}
	return warnings, nil
}
