package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/ttml2txt/internal/app"
	"github.com/patrickprogramme/ttml2txt/internal/assets"
	"github.com/patrickprogramme/ttml2txt/internal/bootstrap"
	"github.com/patrickprogramme/ttml2txt/internal/config"
	"github.com/patrickprogramme/ttml2txt/internal/ui"
)

func main() {
	flags, err := app.ParseArgs(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(app.ExitCode(err))
	}

	// emplacement config par défaut : à côté du binaire
	if flags.ConfigPath == "" {
		binDir := "."
		if exePath, err := os.Executable(); err != nil {
			log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
		} else {
			binDir = filepath.Dir(exePath)
		}
		flags.ConfigPath = filepath.Join(binDir, app.DefaultConfigName)
	}

	// s'assurer que le fichier config existe, si non on le crée
	created, err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	)
	if err != nil {
		log.Printf("warning: EnsureConfigPresent: %v", err)
	} else if created {
		fmt.Printf("info: created default config at %s\n", flags.ConfigPath)
	}

	// une config illisible n'empêche pas la conversion : on repart des valeurs par défaut
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Printf("warning: config load: %v (valeurs par défaut utilisées)", err)
		cfg = config.Default()
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := app.New(cfg, ui.NewTerminal(cfg.ShowProgress), flags)
	err = a.Run(ctx)
	stop()
	os.Exit(app.ExitCode(err))
}
