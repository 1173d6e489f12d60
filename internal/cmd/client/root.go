package client

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/bridge"
	logpkg "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/log"
)

// NewRoot constructs the root emsb command and registers the four bridge
// operations. Error printing is left to the caller so bridge errors can be
// reported with just their message.
func NewRoot(logger logpkg.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "emsb",
		Short:         "HTTP to EMS bridge client",
		Long:          "emsb sends messages to TIBCO EMS through the HTTP to EMS Bridge and fetches bridge metrics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", os.Getenv("EMSB_CONFIG"), "Config file, JSON or YAML (or EMSB_CONFIG env)")
	root.AddCommand(
		NewSendCommand(logger),
		NewPublishCommand(logger),
		NewRequestReplyCommand(logger),
		NewStatsCommand(logger),
	)
	return root
}

// ErrorMessage renders err the way the CLI reports failures: bridge errors
// surface only their message, anything else its Error() text.
func ErrorMessage(err error) string {
	var be *bridge.BridgeError
	if errors.As(err, &be) {
		return be.Message
	}
	return err.Error()
}
