package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	msgqueue "github.com/tenstorrent/smc-msgqueue"
	_ "github.com/tenstorrent/smc-msgqueue/internal/handlers"
	"github.com/tenstorrent/smc-msgqueue/hostsim"
)

func newServeCmd() *cobra.Command {
	var rate int
	var scanInterval time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a simulated host continuously submitting requests against a live dispatcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(rate, scanInterval)
		},
	}
	cmd.Flags().IntVar(&rate, "rate", 50, "simulated requests per second")
	cmd.Flags().DurationVar(&scanInterval, "scan-interval", 5*time.Millisecond, "dispatcher scan interval")
	return cmd
}

func runServe(rate int, scanInterval time.Duration) error {
	qs, err := msgqueue.NewQueueSet()
	if err != nil {
		return err
	}
	defer qs.Close()

	reg := msgqueue.NewRegistry()
	reg.MergeStatic(nil)
	if collisions := reg.StaticCollisions(); collisions > 0 {
		cliLog.Warn("static handler registration collisions detected", "count", collisions)
	}

	metrics := msgqueue.NewMetrics()
	trace := newTraceBuffer(64)
	observer := &loggingObserver{metrics: metrics, trace: trace}
	dispatcher := msgqueue.NewDispatcher(qs, reg, nil, observer)

	workloads := []hostsim.Workload{
		{Code: 0x12, Payload: func(seq uint64) []uint32 { return []uint32{0x64, 800 + uint32(seq%50)} }}, // SET_VOLTAGE
		{Code: 0x34},                                                                                     // GET_AICLK
		{Code: 0xC0},                                                                                     // PING_DM
	}
	driver := hostsim.NewDriver(qs, workloads, 1)

	stop := make(chan struct{})
	go dispatcher.Run(stop, scanInterval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	cliLog.Info("serving", "rate", rate, "scan_interval", scanInterval)

	interval := time.Second / time.Duration(rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			close(stop)
			printSummary(metrics, trace)
			return nil
		case <-ticker.C:
			driver.SubmitOne()
			driver.DrainResponses()
		}
	}
}

// loggingObserver adapts msgqueue.Observer semantics for the CLI: it
// forwards counts into Metrics and records a trace entry for the status
// view, logging unknown commands as they happen.
type loggingObserver struct {
	metrics *msgqueue.Metrics
	trace   *traceBuffer
}

func (o *loggingObserver) ObserveDispatch(queue int, code uint8, status uint8, latencyNs uint64) {
	o.metrics.ObserveDispatch(queue, code, status, latencyNs)
	o.trace.record(queue, code, status, time.Now())
}

func (o *loggingObserver) ObserveUnknownCommand(queue int, code uint8) {
	o.metrics.ObserveUnknownCommand(queue, code)
	cliLog.Debug("unknown command", "queue", queue, "code", code)
}

func (o *loggingObserver) ObserveQueueDepth(queue int, depth uint32) {
	o.metrics.ObserveQueueDepth(queue, depth)
}

func printSummary(metrics *msgqueue.Metrics, trace *traceBuffer) {
	cliLog.Info("shutting down")
	for q := 0; q < msgqueue.NumQueues; q++ {
		cliLog.Info("queue summary",
			"queue", q,
			"dispatched", metrics.Dispatched(q),
			"unknown", metrics.UnknownCommands(q),
		)
	}
	for _, e := range trace.recent() {
		cliLog.Debug("trace", "entry", e.String())
	}
}
