package main

import (
	"os"

	"github.com/smsportal/portal-console/cmd"
	"github.com/smsportal/portal-console/internal/logging"
	"github.com/smsportal/portal-console/internal/notify"
)

// exit is os.Exit; tests replace it.
var exit = os.Exit

var errorHandler notify.Handler = notify.NewDefaultCLIHandler()

func main() {
	exit(run())
}

func run() int {
	if err := cmd.Execute(); err != nil {
		logging.Error("command failed", "error", err)
		errorHandler.Error(err.Error())
		_ = logging.ShutdownGlobal()
		return 1
	}
	return 0
}
