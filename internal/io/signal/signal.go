// Package signal bridges OS termination signals to context cancellation.
package signal

import (
	"context"
	"os"
	gosignal "os/signal"
	"syscall"
	"time"

	"github.com/snonux/ecat/internal/constants"
	"github.com/snonux/ecat/internal/io/dlog"
)

// InterruptWithCancel installs the signal handler for a run. The first
// interrupt cancels the context so readers wind down and buffers get
// flushed. A second interrupt within the grace window exits right away.
// Other termination signals cancel and then force an exit after a delay
// in case shutdown hangs.
func InterruptWithCancel(ctx context.Context, cancel context.CancelFunc) {
	sigIntCh := make(chan os.Signal, constants.SignalChannelSize)
	gosignal.Notify(sigIntCh, os.Interrupt)
	sigOtherCh := make(chan os.Signal, constants.SignalChannelSize)
	gosignal.Notify(sigOtherCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		for {
			select {
			case <-sigIntCh:
				dlog.Common.Warn("Interrupted, finishing up, hit Ctrl+C again to exit now")
				cancel()
				select {
				case <-sigIntCh:
					os.Exit(0)
				case <-time.After(time.Second * constants.InterruptTimeoutSeconds):
				}
			case <-sigOtherCh:
				cancel()
				go func() {
					time.Sleep(constants.ForceExitDelay)
					os.Exit(0)
				}()
			case <-ctx.Done():
				return
			}
		}
	}()
}
