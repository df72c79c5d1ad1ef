package verify

import (
	"log"
	"os"
	"sync"

	"github.com/ezrec/greenpak/reg"
)

// ExitLayoutMismatch is the process exit code of a failed layout check.
const ExitLayoutMismatch = 3

var (
	once   sync.Once
	result error

	// Replaced by tests.
	newLayout = func() Layout { return &reg.Registers{} }
	exit      = os.Exit
)

// Startup runs the canonical check on the first call. Later calls
// return the first result.
func Startup() error {
	once.Do(func() {
		result = Canonical(newLayout())
	})
	return result
}

// Must runs Startup and terminates the process if the layout is wrong.
func Must() {
	fatal(Startup())
}

// MustSweep runs Sweep on layouts from newLayout and terminates the
// process if any signal is misplaced.
func MustSweep(newLayout func() Layout) {
	fatal(Sweep(newLayout))
}

func fatal(err error) {
	if err == nil {
		return
	}

	log.Printf("%v", f("LAYOUT MISMATCH: %v", err))
	log.Printf("%v", f("register map cannot be trusted for this build; aborting"))
	exit(ExitLayoutMismatch)
}
