package term

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Raw escape sequences for the last-resort restore. By the time a
// panic reaches us tcell's state is suspect, so these bypass it
var (
	csiMouseOff      = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset writes the restore sequences directly, leaving the
// terminal usable even when Fini can no longer run
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash restores the terminal, prints the panic with its stack
// to stderr and exits. Shared by the main loop and Go-spawned
// goroutines so every crash leaves a readable trace on a sane screen
func HandleCrash(r any) {
	if r == nil {
		return
	}

	EmergencyReset(os.Stdout)

	os.Stdout.Sync()
	os.Stderr.Sync()

	// \r\n because the terminal may still be in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mpanic: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "stack:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go spawns fn on a goroutine that routes panics through HandleCrash.
// A bare go statement would die with the terminal still in the
// alternate screen
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
