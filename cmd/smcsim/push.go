package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	msgqueue "github.com/tenstorrent/smc-msgqueue"
	_ "github.com/tenstorrent/smc-msgqueue/internal/handlers"
)

func newPushCmd() *cobra.Command {
	var queue int

	cmd := &cobra.Command{
		Use:   "push <code> [payload-words...]",
		Short: "Push one request through a fresh dispatcher and print the response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(queue, args)
		},
	}
	cmd.Flags().IntVar(&queue, "queue", 0, "target queue index")
	return cmd
}

func runPush(queue int, args []string) error {
	code, err := parseUint8(args[0])
	if err != nil {
		return fmt.Errorf("invalid command code %q: %w", args[0], err)
	}
	payload := make([]uint32, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := strconv.ParseUint(a, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid payload word %q: %w", a, err)
		}
		payload = append(payload, uint32(v))
	}

	qs, err := msgqueue.NewQueueSet()
	if err != nil {
		return err
	}
	defer qs.Close()

	reg := msgqueue.NewRegistry()
	reg.MergeStatic(nil)

	dispatcher := msgqueue.NewDispatcher(qs, reg, nil, nil)
	host := msgqueue.NewHostStub(qs)

	if err := host.SubmitRequest(queue, code, payload...); err != nil {
		return err
	}
	dispatcher.ProcessMessageQueues()

	rsp, err := host.AwaitResponse(queue)
	if err != nil {
		return fmt.Errorf("no response available: %w", err)
	}

	cliLog.Info("response",
		"code", fmt.Sprintf("0x%02x", rsp.CommandCode()),
		"status", fmt.Sprintf("0x%02x", rsp.Status()),
		"data", rsp.Data,
	)
	return nil
}

func parseUint8(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
