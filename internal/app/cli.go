package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// DefaultConfigName : fichier de config cherché à côté de l'exécutable quand
// -config n'est pas fourni.
const DefaultConfigName = "ttml2txt.yaml"

// ErrUsage : ligne de commande invalide (flag inconnu, valeur manquante...).
var ErrUsage = errors.New("arguments invalides")

// ParseArgs lit les flags et les chemins positionnels de args (sans le nom du
// programme). Les flags sont acceptés avant, entre ou après les chemins :
// "in.ttml out.txt -timestamps" et "-timestamps in.ttml out.txt" sont équivalents.
//
// ConfigPath reste vide si -config est absent ; une valeur explicite est
// conservée telle quelle. -h / -help retourne flag.ErrHelp.
func ParseArgs(name string, args []string, output io.Writer) (*CLIFlags, error) {
	f := &CLIFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&f.ConfigPath, "config", "", "fichier de configuration (défaut : "+DefaultConfigName+" à côté de l'exécutable)")
	fs.BoolVar(&f.Timestamps, "timestamps", false, "Include timestamps in the transcript")
	fs.BoolVar(&f.Clipboard, "clipboard", false, "copie le transcript dans le presse-papier (mode fichier unique)")
	fs.StringVar(&f.CacheDir, "cache-dir", "", "répertoire parcouru en mode batch (remplace cache_dir)")
	fs.StringVar(&f.OutputDir, "output-dir", "", "répertoire des transcripts en mode batch (remplace output_dir)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"Usage: %s [flags] [input_file output_file]\n\n"+
				"Extrait le texte des sous-titres TTML et l'enregistre en texte brut.\n"+
				"Sans les deux chemins, tous les fichiers TTML du cache sont convertis (mode batch).\n\n",
			name)
		fs.PrintDefaults()
	}

	// flag s'arrête au premier argument positionnel : on reprend le parsing après chacun
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	if len(positional) > 0 {
		f.Input = positional[0]
	}
	if len(positional) > 1 {
		f.Output = positional[1]
	}
	return f, nil
}

// ExitCode traduit l'erreur finale du programme en code de sortie :
// 0 sans erreur ou pour -help, 2 pour une ligne de commande invalide,
// 1 sinon (en pratique ErrInputUnreadable, seule erreur que Run remonte).
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}
