// Command smcsim drives an in-process simulation of the host<->controller
// message queue dispatcher: it allocates a queue set, registers the
// reference handler pack, and lets a caller push requests and drain them
// through the dispatch loop without any real hardware.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tenstorrent/smc-msgqueue/internal/logging"
)

var (
	verbose bool
	cliLog  *log.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "smcsim",
		Short: "Simulate the host<->controller message queue dispatcher",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cliLog = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
		if verbose {
			cliLog.SetLevel(log.DebugLevel)
			logging.SetDefault(logging.NewLogger(&logging.Config{Level: logging.LevelDebug, Output: os.Stderr}))
		} else {
			cliLog.SetLevel(log.InfoLevel)
		}
	}

	root.AddCommand(newServeCmd(), newPushCmd(), newStatusCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
