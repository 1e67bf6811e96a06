package assets

import "embed"

//go:embed ttml2txt.example.yaml
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "ttml2txt.example.yaml"
