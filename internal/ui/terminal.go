package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"
)

type terminalUI struct {
	out, errOut  io.Writer
	showProgress bool
	quiet        bool // true pendant qu'une barre est affichée : les infos sont masquées
}

// NewTerminal construit l'UI console. showProgress active la barre du mode batch.
func NewTerminal(showProgress bool) Interface {
	return &terminalUI{
		out:          os.Stdout,
		errOut:       os.Stderr,
		showProgress: showProgress,
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	if t.quiet {
		return
	}
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, s)
}

func (t *terminalUI) StartProgress(ctx context.Context, name string, total int) Progress {
	if !t.showProgress || total <= 0 {
		return NoProgress{}
	}

	pc := mpb.NewWithContext(ctx,
		mpb.WithOutput(t.out),
		mpb.WithWidth(64),
	)
	bar := pc.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight}),
			decor.CountersNoUnit("%d/%d", decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
		),
	)
	t.quiet = true
	return &barProgress{ui: t, pc: pc, bar: bar, total: int64(total)}
}

type barProgress struct {
	ui    *terminalUI
	pc    *mpb.Progress
	bar   *mpb.Bar
	total int64
	done  bool
}

func (p *barProgress) Increment() {
	p.bar.Increment()
}

func (p *barProgress) Done() {
	if p.done {
		return
	}
	p.done = true
	// arrêt anticipé (annulation) : on fige la barre à la valeur courante
	if cur := p.bar.Current(); cur < p.total {
		p.bar.SetTotal(cur, true)
	}
	p.pc.Wait()
	p.ui.quiet = false
}
