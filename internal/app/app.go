package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/patrickprogramme/ttml2txt/internal/config"
	"github.com/patrickprogramme/ttml2txt/internal/subtitles"
	"github.com/patrickprogramme/ttml2txt/internal/ui"
)

const dirPerm = 0o755

// ErrInputUnreadable : le fichier d'entrée du mode fichier unique n'a pas pu être lu.
// C'est la seule erreur qui doit provoquer un code de sortie non nul.
var ErrInputUnreadable = errors.New("fichier d'entrée illisible")

// CLIFlags contient les information venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	Input      string // argument positionnel 1 (mode fichier unique)
	Output     string // argument positionnel 2 (mode fichier unique)
	Timestamps bool
	Clipboard  bool
	CacheDir   string
	OutputDir  string
}

// SingleFile indique si les deux chemins du mode fichier unique sont fournis.
func (f *CLIFlags) SingleFile() bool {
	return f != nil && f.Input != "" && f.Output != ""
}

// App orchestre les différentes dépendances (UI, config, FS...)
type App struct {
	cfg   *config.Config
	ui    ui.Interface
	flags *CLIFlags
}

// New construit l'application. Pour les tests, on injecte une ui.Interface factice.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	if flags == nil {
		flags = &CLIFlags{}
	}
	return &App{
		cfg:   cfg,
		ui:    uiClient,
		flags: flags,
	}
}

// Run choisit le mode selon les arguments et l'exécute.
// Seule une entrée illisible en mode fichier unique remonte une erreur
// (ErrInputUnreadable) ; les autres échecs sont signalés via l'UI.
func (a *App) Run(ctx context.Context) error {
	a.applyFlags()

	if a.flags.SingleFile() {
		return a.RunSingle(ctx, a.flags.Input, a.flags.Output)
	}
	if a.flags.Input != "" || a.flags.Output != "" {
		a.ui.PrintInfo(ctx, "Un seul chemin fourni : passage en mode batch (entrée ET sortie requises pour le mode fichier unique).")
	}

	if _, err := a.RunBatch(ctx); err != nil {
		a.ui.PrintError(ctx, err.Error())
	}
	return nil
}

// applyFlags : les flags passés en ligne de commande priment sur la config.
func (a *App) applyFlags() {
	if a.flags.Timestamps {
		a.cfg.IncludeTimestamps = true
	}
	if a.flags.Clipboard {
		a.cfg.CopyToClipboard = true
	}
	if a.flags.CacheDir != "" {
		a.cfg.CacheDir = a.flags.CacheDir
		a.cfg.ResolveCacheDir()
	}
	if a.flags.OutputDir != "" {
		a.cfg.OutputDir = a.flags.OutputDir
	}
}

// RunSingle convertit inPath vers outPath.
func (a *App) RunSingle(ctx context.Context, inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("Erreur de lecture de %s : %v", inPath, err))
		return fmt.Errorf("%w: %s: %v", ErrInputUnreadable, inPath, err)
	}

	tr, err := a.convert(ctx, inPath, data, outPath)
	if err != nil {
		// déjà signalé par convert : pas fatal
		return nil
	}

	if a.cfg.CopyToClipboard {
		a.copyTranscript(ctx, tr)
	}
	return nil
}

// options dérivées de la config courante
func (a *App) options() subtitles.Options {
	return subtitles.Options{IncludeTimestamps: a.cfg.IncludeTimestamps}
}
