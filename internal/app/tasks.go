package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/patrickprogramme/ttml2txt/internal/clipboard"
	"github.com/patrickprogramme/ttml2txt/internal/locator"
	"github.com/patrickprogramme/ttml2txt/internal/subtitles"
)

// BatchResult résume un passage en mode batch.
type BatchResult struct {
	Found     int
	Converted int
	Failed    int
	Outputs   []string // chemins écrits, dans l'ordre de traitement
}

// RunBatch parcourt le répertoire de cache, convertit chaque fichier trouvé et
// écrit les transcripts dans le répertoire de sortie. Les échecs par fichier
// sont signalés puis ignorés ; seule une impossibilité de parcourir le cache
// est retournée comme erreur.
func (a *App) RunBatch(ctx context.Context) (BatchResult, error) {
	var res BatchResult

	a.ui.PrintInfo(ctx, "Recherche des fichiers TTML...")
	warnings, err := a.cfg.ValidateCacheDir()
	for _, w := range warnings {
		a.ui.PrintError(ctx, "warning: "+w)
	}
	if err != nil {
		return res, fmt.Errorf("cache TTML : %w", err)
	}

	files, err := locator.Find(a.cfg.CacheDir, a.cfg.IDMarker, a.cfg.Extensions)
	if err != nil {
		// cache absent : rien à traiter, pas fatal
		a.ui.PrintError(ctx, fmt.Sprintf("Erreur de recherche : %v", err))
		files = nil
	}
	res.Found = len(files)
	a.ui.PrintInfo(ctx, fmt.Sprintf("%d fichiers TTML trouvés", len(files)))

	if err := os.MkdirAll(a.cfg.OutputDir, dirPerm); err != nil {
		return res, fmt.Errorf("création du répertoire de sortie %s : %w", a.cfg.OutputDir, err)
	}

	namer := newOutputNamer(a.cfg.OutputDir)
	progress := a.ui.StartProgress(ctx, "Transcripts", len(files))
	defer progress.Done()

	for _, f := range files {
		if ctx.Err() != nil {
			a.ui.PrintError(ctx, "Traitement interrompu.")
			break
		}

		// le nom est réservé dans l'ordre de découverte, même si la lecture échoue
		outPath := namer.Next(f.ID)

		data, err := os.ReadFile(f.Path)
		if err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("Erreur de lecture de %s : %v", f.Path, err))
			res.Failed++
			progress.Increment()
			continue
		}
		if _, err := a.convert(ctx, f.Path, data, outPath); err != nil {
			res.Failed++
		} else {
			res.Converted++
			res.Outputs = append(res.Outputs, outPath)
		}
		progress.Increment()
	}
	progress.Done()

	a.ui.PrintInfo(ctx, fmt.Sprintf("%d transcript(s) écrit(s), %d échec(s)", res.Converted, res.Failed))
	return res, nil
}

// convert construit le transcript de data et l'écrit dans outPath.
// Toute erreur est signalée via l'UI avant d'être retournée ; aucun fichier
// n'est écrit si le document est invalide.
func (a *App) convert(ctx context.Context, src string, data []byte, outPath string) (subtitles.Transcript, error) {
	tr, err := subtitles.BuildTranscript(data, a.options())
	if err != nil {
		switch {
		case errors.Is(err, subtitles.ErrMalformedXML):
			a.ui.PrintError(ctx, fmt.Sprintf("Erreur de parsing XML (%s) : %v", src, err))
		case errors.Is(err, subtitles.ErrMissingElement):
			a.ui.PrintError(ctx, fmt.Sprintf("Structure TTML inattendue (%s) : %v", src, err))
		default:
			a.ui.PrintError(ctx, fmt.Sprintf("Erreur de conversion (%s) : %v", src, err))
		}
		return tr, err
	}

	if err := tr.Save(outPath); err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("Erreur d'écriture de %s : %v", outPath, err))
		return tr, err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Transcript enregistré : %s", outPath))
	return tr, nil
}

// copyTranscript copie le transcript dans le presse-papier (best-effort).
func (a *App) copyTranscript(ctx context.Context, tr subtitles.Transcript) {
	text := tr.String()
	if text == "" {
		a.ui.PrintInfo(ctx, "Transcript vide : rien à copier dans le presse-papier.")
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("warning: copie dans le presse-papier impossible : %v", err))
		return
	}
	if !clipboard.ClipboardEquals(text) {
		a.ui.PrintError(ctx, "warning: le presse-papier ne contient pas le transcript après la copie.")
		return
	}
	a.ui.PrintInfo(ctx, "Transcript copié dans le presse-papier.")
}
