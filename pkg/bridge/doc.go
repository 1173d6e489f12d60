// Package bridge is the client library for the HTTP to EMS Bridge.
//
// The bridge is an external HTTP service that forwards messages to TIBCO
// EMS. This package only builds HTTP requests against it: domain parameters
// become JMS-* request headers, the message text is POSTed as-is, and the
// response is interpreted into a SendResult or a *BridgeError. The JMS side
// (connection pooling, request/reply correlation, reply listening) lives
// entirely in the bridge process.
//
// Usage
//
//	c := bridge.New("http://localhost:8080", bridge.WithTimeout(60*time.Second))
//	defer c.Close()
//
//	res, err := c.Publish(ctx, bridge.SendRequest{
//	    EMSURL: "tcp://localhost:7222",
//	    User:   "admin",
//	    Queue:  "queue.test",
//	    Body:   `{"hello":"world"}`,
//	})
//	if err != nil {
//	    var be *bridge.BridgeError
//	    if errors.As(err, &be) {
//	        // be.StatusCode, be.Message
//	    }
//	    return err
//	}
//	fmt.Println(res.MessageID)
//
// Request-reply waits on the bridge, never on the broker directly:
//
//	res, err := c.RequestReply(ctx, bridge.SendRequest{
//	    EMSURL:     "tcp://localhost:7222",
//	    User:       "admin",
//	    Queue:      "queue.req",
//	    ReplyQueue: "queue.reply",
//	    Body:       "ping",
//	})
//
// Every call is stateless; the only shared state is the underlying
// *http.Client and its connection pool, released by Close.
package bridge
