// main is the entry point for the lingostat CLI.
package main

import (
	"fmt"
	"os"

	"github.com/arshaad-deriv/lingostat/cmd"
	"github.com/arshaad-deriv/lingostat/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	// Flush profiling output and close database handles regardless of
	// command outcome, before deciding the exit code.
	if perr := cmd.StopProfiling(); perr != nil {
		fmt.Fprintln(os.Stderr, "❌ Error stopping profiling:", perr)
	}
	iocache.CloseStores()

	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
