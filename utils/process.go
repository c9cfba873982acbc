package utils

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"
)

// WaitForCtrlC will block/wait until a control-c or termination signal is received
func WaitForCtrlC() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}

// RecoverPanic converts a panic in the calling goroutine into an error passed to onPanic.
// With an onPanic callback the caller owns reporting the error, only the stack is logged at debug level.
// Must be deferred directly.
func RecoverPanic(identifier string, onPanic func(err error)) {
	if rec := recover(); rec != nil {
		err := fmt.Errorf("uncaught panic in %v subroutine: %v", identifier, rec)
		if onPanic == nil {
			logrus.WithError(err).Errorf("%v, stack: %v", err, string(debug.Stack()))
			return
		}
		logrus.WithError(err).Debugf("recovered panic, stack: %v", string(debug.Stack()))
		onPanic(err)
	}
}
