package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/kwriddell48/HTTP-TO-EMS-SERVER-BRIDGE/pkg/log"
)

// bridgeStub is a minimal stand-in for the HTTP to EMS Bridge.
type bridgeStub struct {
	calls       int
	lastHeader  http.Header
	lastBody    string
	status      int
	contentType string
	respBody    string
}

func startBridgeStub(t *testing.T, status int, contentType, respBody string) (*bridgeStub, string) {
	t.Helper()
	stub := &bridgeStub{status: status, contentType: contentType, respBody: respBody}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.calls++
		stub.lastHeader = r.Header.Clone()
		b, _ := io.ReadAll(r.Body)
		stub.lastBody = string(b)
		if stub.contentType != "" {
			w.Header().Set("Content-Type", stub.contentType)
		}
		w.WriteHeader(stub.status)
		_, _ = fmt.Fprint(w, stub.respBody)
	}))
	t.Cleanup(srv.Close)
	return stub, srv.URL
}

func clearBridgeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HTTP_EMS_BRIDGE_URL", "")
	t.Setenv("JMS_USR", "")
	t.Setenv("JMS_PSW", "")
	t.Setenv("EMSB_HTTP_TIMEOUT_SEC", "")
	t.Setenv("EMSB_CONFIG", "")
}

func TestSendCommandPrintsResponseBody(t *testing.T) {
	clearBridgeEnv(t)
	stub, url := startBridgeStub(t, http.StatusOK, "text/plain", "pong")

	cmd := NewSendCommand(logpkg.NewNopLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--user", "admin",
		"--queue", "queue.test",
		"--body", "ping",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "pong\n", buf.String())
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "admin", stub.lastHeader.Get("JMS-USR"))
	assert.Equal(t, "queue.test", stub.lastHeader.Get("JMS-QU1"))
	assert.Equal(t, "ping", stub.lastBody)
}

func TestSendCommandPublishOnlyFlag(t *testing.T) {
	clearBridgeEnv(t)
	stub, url := startBridgeStub(t, http.StatusOK, "application/json", `{"messageId":"id-1"}`)

	cmd := NewSendCommand(logpkg.NewNopLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--user", "admin",
		"--queue", "queue.test",
		"--body", "hi",
		"--publish-only",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "YES", stub.lastHeader.Get("JMS-PUBLISH-ONLY"))
	assert.Empty(t, stub.lastHeader.Get("JMS-QU2"))
	assert.Empty(t, stub.lastHeader.Get("JMS-TIMEOUT"))
	// send prints the raw body, not the message id
	assert.Equal(t, `{"messageId":"id-1"}`+"\n", buf.String())
}

func TestSendCommandMissingUserFailsBeforeHTTP(t *testing.T) {
	clearBridgeEnv(t)
	stub, url := startBridgeStub(t, http.StatusOK, "text/plain", "pong")

	cmd := NewSendCommand(logpkg.NewNopLogger())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--queue", "queue.test",
		"--body", "hi",
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user is required")
	assert.Equal(t, 0, stub.calls)
}

func TestSendCommandUserFromEnv(t *testing.T) {
	clearBridgeEnv(t)
	stub, url := startBridgeStub(t, http.StatusOK, "text/plain", "ok")
	t.Setenv("JMS_USR", "envuser")
	t.Setenv("JMS_PSW", "envpass")

	cmd := NewSendCommand(logpkg.NewNopLogger())
	cmd.SetOut(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--queue", "queue.test",
		"--body", "hi",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "envuser", stub.lastHeader.Get("JMS-USR"))
	assert.Equal(t, "envpass", stub.lastHeader.Get("JMS-PSW"))
}

func TestSendCommandBodyFromStdin(t *testing.T) {
	clearBridgeEnv(t)
	stub, url := startBridgeStub(t, http.StatusOK, "text/plain", "ok")

	cmd := NewSendCommand(logpkg.NewNopLogger())
	cmd.SetOut(io.Discard)
	cmd.SetIn(strings.NewReader("abc"))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--user", "admin",
		"--queue", "queue.test",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "abc", stub.lastBody)
}

func TestSendCommandBridgeErrorSurfacesMessage(t *testing.T) {
	clearBridgeEnv(t)
	_, url := startBridgeStub(t, http.StatusBadGateway, "application/json", `{"error":"bad queue"}`)

	cmd := NewSendCommand(logpkg.NewNopLogger())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--user", "admin",
		"--queue", "queue.test",
		"--body", "hi",
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, "bad queue", ErrorMessage(err))
}

func TestSendCommandNewCorrelationID(t *testing.T) {
	clearBridgeEnv(t)
	stub, url := startBridgeStub(t, http.StatusOK, "text/plain", "ok")

	cmd := NewSendCommand(logpkg.NewNopLogger())
	cmd.SetOut(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--user", "admin",
		"--queue", "queue.test",
		"--body", "hi",
		"--new-correlation-id",
	})

	require.NoError(t, cmd.Execute())
	assert.NotEmpty(t, stub.lastHeader.Get("JMS-CORRELATION-ID"))
}

func TestSendCommandExplicitCorrelationIDWins(t *testing.T) {
	clearBridgeEnv(t)
	stub, url := startBridgeStub(t, http.StatusOK, "text/plain", "ok")

	cmd := NewSendCommand(logpkg.NewNopLogger())
	cmd.SetOut(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--user", "admin",
		"--queue", "queue.test",
		"--body", "hi",
		"--correlation-id", "corr-42",
		"--new-correlation-id",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "corr-42", stub.lastHeader.Get("JMS-CORRELATION-ID"))
}

func TestPublishCommandPrintsMessageID(t *testing.T) {
	clearBridgeEnv(t)
	stub, url := startBridgeStub(t, http.StatusOK, "application/json", `{"messageId":"abc123"}`)

	cmd := NewPublishCommand(logpkg.NewNopLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--user", "admin",
		"--queue", "queue.test",
		"--body", "hi",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "abc123\n", buf.String())
	assert.Equal(t, "YES", stub.lastHeader.Get("JMS-PUBLISH-ONLY"))
}

func TestPublishCommandFallsBackToBody(t *testing.T) {
	clearBridgeEnv(t)
	_, url := startBridgeStub(t, http.StatusOK, "application/json", "not-json")

	cmd := NewPublishCommand(logpkg.NewNopLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--user", "admin",
		"--queue", "queue.test",
		"--body", "hi",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "not-json\n", buf.String())
}

func TestRequestReplyCommandDefaultsTimeout(t *testing.T) {
	clearBridgeEnv(t)
	stub, url := startBridgeStub(t, http.StatusOK, "text/plain", "reply-body")

	cmd := NewRequestReplyCommand(logpkg.NewNopLogger())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{
		"--bridge", url,
		"--url", "tcp://localhost:7222",
		"--user", "admin",
		"--queue", "queue.req",
		"--reply-queue", "queue.reply",
		"--body", "ping",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "30000", stub.lastHeader.Get("JMS-TIMEOUT"))
	assert.Equal(t, "queue.reply", stub.lastHeader.Get("JMS-QU2"))
	assert.Empty(t, stub.lastHeader.Get("JMS-PUBLISH-ONLY"))
	assert.Equal(t, "reply-body\n", buf.String())
}

func TestSendCommandRequiredFlags(t *testing.T) {
	clearBridgeEnv(t)
	cmd := NewSendCommand(logpkg.NewNopLogger())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"--user", "admin", "--body", "hi"})
	require.Error(t, cmd.Execute())
}
