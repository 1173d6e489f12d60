package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/bridge"
	logpkg "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/log"
)

// NewPublishCommand constructs the `publish` convenience command:
// fire-and-forget, printing the JMS message id.
func NewPublishCommand(logger logpkg.Logger) *cobra.Command {
	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a message to EMS (fire-and-forget)",
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

			body, err := resolveBody(bodyFlag, file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cli := newBridgeClient(cmd, cfg, logger)
			defer cli.Close()

			result, err := cli.Publish(cmd.Context(), bridge.SendRequest{
				EMSURL:   emsURL,
				User:     user,
				Queue:    queue,
				Body:     body,
				Password: stringFlagOr(cmd, "password", cfg.Password),
			})
			if err != nil {
				return err
			}
			out := result.MessageID
			if out == "" {
				out = result.Body
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	publishCmd.Flags().StringP("bridge", "b", "", "Bridge URL (default http://localhost:8080, or HTTP_EMS_BRIDGE_URL env)")
	publishCmd.Flags().StringP("url", "u", "", "EMS server URL (e.g., tcp://localhost:7222)")
	publishCmd.Flags().String("user", "", "EMS username (or JMS_USR env)")
	publishCmd.Flags().StringP("password", "p", "", "EMS password (or JMS_PSW env)")
	publishCmd.Flags().StringP("queue", "q", "", "Destination queue (JMS-QU1)")
	publishCmd.Flags().StringP("body", "d", "", "Message body")
	publishCmd.Flags().StringP("file", "f", "", "Read message body from file")
	_ = publishCmd.MarkFlagRequired("url")
	_ = publishCmd.MarkFlagRequired("queue")
	return publishCmd
}
