package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/ttml2txt/internal/assets"
	"github.com/patrickprogramme/ttml2txt/internal/fsutil"
	"github.com/patrickprogramme/ttml2txt/internal/locator"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

const (
	DefaultOutputDir = "./transcripts"

	// emplacement du cache TTML d'Apple Podcasts, relatif au $HOME (macOS)
	applePodcastsTTMLDir = "Library/Group Containers/243LU875E5.groups.com.apple.podcasts/Library/Cache/Assets/TTML"
)

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	CacheDir  string `yaml:"cache_dir"`
	OutputDir string `yaml:"output_dir"`

	// Recherche des fichiers (mode batch)
	IDMarker   string   `yaml:"id_marker"`
	Extensions []string `yaml:"extensions"`

	// Transcription
	IncludeTimestamps bool `yaml:"include_timestamps"`

	// Sortie
	CopyToClipboard bool `yaml:"copy_to_clipboard"`
	ShowProgress    bool `yaml:"show_progress"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Default retourne la configuration par défaut, normalisée (fallback si
// l'asset embarqué est manquant ou si le fichier est illisible).
func Default() *Config {
	c := defaults()
	c.normalizeConfig()
	return c
}

// defaults : valeurs par défaut brutes, telles qu'écrites dans un fichier
// (cache_dir vide, chemins non résolus).
func defaults() *Config {
	c := &Config{}

	// Chemins
	c.CacheDir = ""
	c.OutputDir = DefaultOutputDir

	// Recherche
	c.IDMarker = locator.DefaultMarker
	c.Extensions = []string{locator.DefaultExtension}

	// Transcription
	c.IncludeTimestamps = false

	// Sortie
	c.CopyToClipboard = false
	c.ShowProgress = false

	c.ConfigVersion = CurrentConfigVersion
	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "ttml2txt.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	// lire le YAML brut
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// On déserialise sur les valeurs par défaut brutes : les champs absents les
	// conservent. Une clé config_version absente vaut 0 (fichier d'avant le versioning).
	cfg := defaults()
	cfg.ConfigVersion = 0
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path
	cfg.slashPaths()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour.
	// La migration réécrit les valeurs brutes, avant normalisation.
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
	}

	cfg.normalizeConfig()
	return cfg, nil
}

// slashPaths corrige les chemins Windows saisis avec des backslashes.
// Seuls les champs de chemin sont touchés.
func (c *Config) slashPaths() {
	c.CacheDir = strings.ReplaceAll(c.CacheDir, `\`, "/")
	c.OutputDir = strings.ReplaceAll(c.OutputDir, `\`, "/")
}

// Path retourne le chemin du fichier d'où la config a été lue ("" pour Default()).
func (c *Config) Path() string {
	return c.configFilePath
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels), parents inclus
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	c.OutputDir = filepath.Clean(expandHome(c.OutputDir))

	c.IDMarker = strings.TrimSpace(c.IDMarker)
	if c.IDMarker == "" {
		c.IDMarker = locator.DefaultMarker
	}

	// extensions : trim + point initial, doublons et vides retirés
	exts := make([]string, 0, len(c.Extensions))
	seen := make(map[string]bool, len(c.Extensions))
	for _, e := range c.Extensions {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		exts = append(exts, e)
	}
	if len(exts) == 0 {
		exts = []string{locator.DefaultExtension}
	}
	c.Extensions = exts

	c.ResolveCacheDir()
}

// ResolveCacheDir normalise CacheDir : vide -> cache TTML d'Apple Podcasts sous $HOME,
// "~" en tête -> $HOME. Appeler après avoir modifié c.CacheDir.
func (c *Config) ResolveCacheDir() {
	if c == nil {
		return
	}
	dir := strings.TrimSpace(c.CacheDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "~"
		}
		c.CacheDir = filepath.Join(home, filepath.FromSlash(applePodcastsTTMLDir))
		return
	}
	c.CacheDir = filepath.Clean(expandHome(dir))
}

// expandHome remplace un "~" initial par le répertoire personnel.
func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
