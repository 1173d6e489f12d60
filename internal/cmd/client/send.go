package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/bridge"
	logpkg "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/log"
)

// NewSendCommand constructs the generic `send` command with the full flag
// surface: publish-only or request-reply is selected per invocation.
func NewSendCommand(logger logpkg.Logger) *cobra.Command {
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message to EMS via the bridge",
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
			bodyFlag, _ := cmd.Flags().GetString("body")
			file, _ := cmd.Flags().GetString("file")
			publishOnly, _ := cmd.Flags().GetBool("publish-only")
			replyQueue, _ := cmd.Flags().GetString("reply-queue")
			timeoutMs, _ := cmd.Flags().GetInt("timeout")
			correlationID, _ := cmd.Flags().GetString("correlation-id")
			newCorrelation, _ := cmd.Flags().GetBool("new-correlation-id")
			plain, _ := cmd.Flags().GetBool("plain")

			body, err := resolveBody(bodyFlag, file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if correlationID == "" && newCorrelation {
				correlationID = bridge.NewCorrelationID()
			}

			cli := newBridgeClient(cmd, cfg, logger)
			defer cli.Close()

			result, err := cli.Send(cmd.Context(), bridge.SendRequest{
				EMSURL:        emsURL,
				User:          user,
				Queue:         queue,
				Body:          body,
				Password:      stringFlagOr(cmd, "password", cfg.Password),
				ReplyQueue:    replyQueue,
				PublishOnly:   publishOnly,
				TimeoutMs:     timeoutMs,
				CorrelationID: correlationID,
				PlainText:     plain,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Body)
			return nil
		},
	}

	sendCmd.Flags().StringP("bridge", "b", "", "Bridge URL (default http://localhost:8080, or HTTP_EMS_BRIDGE_URL env)")
	sendCmd.Flags().StringP("url", "u", "", "EMS server URL (e.g., tcp://localhost:7222)")
	sendCmd.Flags().String("user", "", "EMS username (or JMS_USR env)")
	sendCmd.Flags().StringP("password", "p", "", "EMS password (or JMS_PSW env)")
	sendCmd.Flags().StringP("queue", "q", "", "Destination queue (JMS-QU1)")
	sendCmd.Flags().StringP("body", "d", "", "Message body")
	sendCmd.Flags().StringP("file", "f", "", "Read message body from file")
	sendCmd.Flags().Bool("publish-only", false, "Publish without waiting for reply")
	sendCmd.Flags().String("reply-queue", "", "Reply queue for request-reply (JMS-QU2)")
	sendCmd.Flags().IntP("timeout", "t", 30000, "Reply timeout in milliseconds")
	sendCmd.Flags().String("correlation-id", "", "JMS correlation ID")
	sendCmd.Flags().Bool("new-correlation-id", false, "Mint a fresh correlation ID when --correlation-id is unset")
	sendCmd.Flags().Bool("plain", false, "Use text/plain instead of application/json")
	sendCmd.Flags().Float64("timeout-sec", 60, "HTTP request timeout in seconds")
	_ = sendCmd.MarkFlagRequired("url")
	_ = sendCmd.MarkFlagRequired("queue")
	return sendCmd
}
