package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/bridge"
	logpkg "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/log"
)

// NewRequestReplyCommand constructs the `request-reply` convenience command:
// send a message and print the correlated reply.
func NewRequestReplyCommand(logger logpkg.Logger) *cobra.Command {
	rrCmd := &cobra.Command{
		Use:   "request-reply",
		Short: "Send a request to EMS and wait for the reply",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			user, err := requireUser(cmd, cfg)
			if err != nil {
				return err
			}

			emsURL, _ := cmd.Flags().GetString("url")
			queue, _ := cmd.Flags().GetString("queue")
			replyQueue, _ := cmd.Flags().GetString("reply-queue")
			bodyFlag, _ := cmd.Flags().GetString("body")
			file, _ := cmd.Flags().GetString("file")
			timeoutMs, _ := cmd.Flags().GetInt("timeout")
			correlationID, _ := cmd.Flags().GetString("correlation-id")
			newCorrelation, _ := cmd.Flags().GetBool("new-correlation-id")

			body, err := resolveBody(bodyFlag, file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if correlationID == "" && newCorrelation {
				correlationID = bridge.NewCorrelationID()
			}

			cli := newBridgeClient(cmd, cfg, logger)
			defer cli.Close()

			result, err := cli.RequestReply(cmd.Context(), bridge.SendRequest{
				EMSURL:        emsURL,
				User:          user,
				Queue:         queue,
				Body:          body,
				Password:      stringFlagOr(cmd, "password", cfg.Password),
				ReplyQueue:    replyQueue,
				TimeoutMs:     timeoutMs,
				CorrelationID: correlationID,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Body)
			return nil
		},
	}

	rrCmd.Flags().StringP("bridge", "b", "", "Bridge URL (default http://localhost:8080, or HTTP_EMS_BRIDGE_URL env)")
	rrCmd.Flags().StringP("url", "u", "", "EMS server URL (e.g., tcp://localhost:7222)")
	rrCmd.Flags().String("user", "", "EMS username (or JMS_USR env)")
	rrCmd.Flags().StringP("password", "p", "", "EMS password (or JMS_PSW env)")
	rrCmd.Flags().StringP("queue", "q", "", "Request queue (JMS-QU1)")
	rrCmd.Flags().String("reply-queue", "", "Reply queue (optional; bridge uses a temp queue if omitted)")
	rrCmd.Flags().StringP("body", "d", "", "Message body")
	rrCmd.Flags().StringP("file", "f", "", "Read message body from file")
	rrCmd.Flags().IntP("timeout", "t", 30000, "Reply timeout in milliseconds")
	rrCmd.Flags().String("correlation-id", "", "JMS correlation ID")
	rrCmd.Flags().Bool("new-correlation-id", false, "Mint a fresh correlation ID when --correlation-id is unset")
	_ = rrCmd.MarkFlagRequired("url")
	_ = rrCmd.MarkFlagRequired("queue")
	return rrCmd
}
