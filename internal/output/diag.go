package output

import (
	"os"

	"github.com/pterm/pterm"
)

// Diag prints pipeline diagnostics to stderr, keeping the inventory
// stream clean. Messages are dropped unless verbose mode is on.
type Diag struct {
	enabled bool
	info    *pterm.PrefixPrinter
	warn    *pterm.PrefixPrinter
}

func InitStyles() {
	if os.Getenv("NO_COLOR") != "" {
		pterm.DisableColor()
	}
}

func NewDiag(verbose bool) *Diag {
	return &Diag{
		enabled: verbose,
		info:    pterm.Info.WithWriter(os.Stderr),
		warn:    pterm.Warning.WithWriter(os.Stderr),
	}
}

func (d *Diag) Infof(format string, args ...any) {
	if d == nil || !d.enabled {
		return
	}
	d.info.Printfln(format, args...)
}

func (d *Diag) Warnf(format string, args ...any) {
	if d == nil || !d.enabled {
		return
	}
	d.warn.Printfln(format, args...)
}
