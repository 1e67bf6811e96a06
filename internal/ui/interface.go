package ui

import (
	"context"
)

type Interface interface {
	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// StartProgress ouvre un suivi de progression pour total éléments.
	// Un total <= 0 retourne un suivi sans effet.
	StartProgress(ctx context.Context, name string, total int) Progress
}

// Progress suit l'avancement d'un traitement par lot.
type Progress interface {
	// Increment signale qu'un élément a été traité (succès ou échec).
	Increment()
	// Done termine l'affichage, même si tous les éléments n'ont pas été traités.
	Done()
}

// NoProgress est un Progress sans effet.
type NoProgress struct{}

func (NoProgress) Increment() {}
func (NoProgress) Done()      {}
