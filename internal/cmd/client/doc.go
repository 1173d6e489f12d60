// Package client contains the Cobra CLI commands for emsb.
//
// The CLI talks to the HTTP to EMS Bridge to send messages to TIBCO EMS and
// to fetch bridge metrics. It is primarily intended for developers and
// operators.
//
// # Address configuration
//
// The bridge base URL is read from --bridge, the HTTP_EMS_BRIDGE_URL
// environment variable, or a config file given via --config (EMSB_CONFIG
// env), defaulting to http://localhost:8080. Credentials fall back to the
// JMS_USR and JMS_PSW environment variables.
//
// Usage
//
//	# Publish-only
//	emsb send --url tcp://localhost:7222 --user admin --queue queue.test \
//	    --body "Hello" --publish-only
//
//	# Request-reply with an explicit reply queue
//	emsb send --url tcp://localhost:7222 --user admin --queue queue.req \
//	    --reply-queue queue.reply --body "ping"
//
//	# Body from a file, or piped from stdin
//	emsb publish --url tcp://localhost:7222 --user admin --queue queue.test \
//	    --file message.json
//	echo "Hello" | emsb publish --url tcp://localhost:7222 --user admin \
//	    --queue queue.test
//
//	# Wait for a correlated reply (30s broker-side timeout by default)
//	emsb request-reply --url tcp://localhost:7222 --user admin \
//	    --queue queue.req --body "ping" --timeout 5000
//
//	# Bridge metrics
//	emsb stats
//	emsb stats --plain
//
// Notes
//
//   - Body precedence is --file, then --body, then piped stdin.
//   - send and request-reply print the response body; publish prints the
//     JMS message id, falling back to the response body.
//   - Failures print "Error: <message>" on stderr and exit 1.
package client
