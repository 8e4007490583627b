package main

import (
	"time"

	"github.com/spf13/cobra"

	msgqueue "github.com/tenstorrent/smc-msgqueue"
	_ "github.com/tenstorrent/smc-msgqueue/internal/handlers"
	"github.com/tenstorrent/smc-msgqueue/hostsim"
)

func newStatusCmd() *cobra.Command {
	var duration time.Duration
	var rate int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Run a brief simulated burst and print per-queue dispatch counts and a trace of recent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(duration, rate)
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", 200*time.Millisecond, "how long to run the simulated burst")
	cmd.Flags().IntVar(&rate, "rate", 200, "simulated requests per second")
	return cmd
}

func runStatus(duration time.Duration, rate int) error {
	qs, err := msgqueue.NewQueueSet()
	if err != nil {
		return err
	}
	defer qs.Close()

	reg := msgqueue.NewRegistry()
	reg.MergeStatic(nil)

	metrics := msgqueue.NewMetrics()
	trace := newTraceBuffer(32)
	observer := &loggingObserver{metrics: metrics, trace: trace}
	dispatcher := msgqueue.NewDispatcherWithConfig(qs, reg, &msgqueue.DispatcherConfig{
		PollInterval: time.Millisecond,
		Observer:     observer,
	})

	workloads := []hostsim.Workload{
		{Code: 0x12, Payload: func(seq uint64) []uint32 { return []uint32{0x64, 800 + uint32(seq%50)} }}, // SET_VOLTAGE
		{Code: 0x34},                                                                                     // GET_AICLK
		{Code: 0xC0},                                                                                     // PING_DM
	}
	driver := hostsim.NewDriver(qs, workloads, 1)

	stop := make(chan struct{})
	go dispatcher.Run(stop, time.Millisecond)
	driver.Run(rate, duration)
	close(stop)

	submitted, completed, dropped := driver.Stats()
	cliLog.Info("burst complete",
		"duration", duration,
		"submitted", submitted,
		"completed", completed,
		"dropped", dropped,
	)
	for q := 0; q < msgqueue.NumQueues; q++ {
		cliLog.Info("queue status",
			"queue", q,
			"dispatched", metrics.Dispatched(q),
			"unknown", metrics.UnknownCommands(q),
			"depth", metrics.Depth(q),
		)
	}
	for _, e := range trace.recent() {
		cliLog.Info("trace", "entry", e.String())
	}
	return nil
}
