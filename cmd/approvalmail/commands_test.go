package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Commands read the process environment, so these tests do not run in parallel.

var envKeys = []string{
	"MAILER_PROVIDER", "HTTP_ADDR", "APP_URL", "MAILER_LOGIN_PATH", "MAILER_REPLY_TO",
	"EMAILJS_SERVICE_ID", "EMAILJS_TEMPLATE_ID", "EMAILJS_PUBLIC_KEY", "EMAILJS_PRIVATE_KEY",
	"EMAILJS_ENDPOINT", "EMAILJS_TIMEOUT",
	"RESEND_API_KEY", "RESEND_FROM_EMAIL", "RESEND_FROM_NAME",
	"LOG_LEVEL", "LOG_FORMAT", "SENTRY_DSN",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRender(t *testing.T) {
	clearEnv(t)

	out, _, err := execute(t, "render", "--name", "<b>Jane</b>", "--login-url", "https://app.example.com/login")
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `href="https://app.example.com/login"`)
	assert.Contains(t, out, "&lt;b&gt;Jane&lt;/b&gt;")
	assert.NotContains(t, out, "<b>Jane</b>")
}

func TestRender_DefaultLoginURLAndText(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_URL", "https://app.example.com/")

	out, _, err := execute(t, "render", "--name", "Jane", "--text")
	require.NoError(t, err)

	assert.Contains(t, out, "Hi Jane,")
	assert.Contains(t, out, "https://app.example.com/login")
	assert.NotContains(t, out, "<!DOCTYPE html>")
}

func TestLogDetails(t *testing.T) {
	clearEnv(t)

	_, stderr, err := execute(t, "log-details", "--to", "a@b.com", "--subject", "Hello", "--body", "Body")
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(stderr), &rec))
	assert.Equal(t, "email details", rec["msg"])
	assert.Equal(t, map[string]any{"to": "a@b.com", "subject": "Hello", "body": "Body"}, rec["email"])
}

func TestSend_Unconfigured(t *testing.T) {
	clearEnv(t)

	out, stderr, err := execute(t, "send", "--email", "a@b.com", "--name", "A")

	require.ErrorIs(t, err, errNotSent)
	assert.Equal(t, "sent: false\n", out)
	assert.Contains(t, stderr, "email delivery is not configured")
	assert.Contains(t, stderr, "EMAILJS_SERVICE_ID")
}

func TestSend_EmailJS(t *testing.T) {
	clearEnv(t)

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	t.Setenv("EMAILJS_SERVICE_ID", "svc")
	t.Setenv("EMAILJS_TEMPLATE_ID", "tpl")
	t.Setenv("EMAILJS_PUBLIC_KEY", "pub")
	t.Setenv("EMAILJS_ENDPOINT", srv.URL)

	out, _, err := execute(t, "send", "--email", "jane@example.com", "--name", "Jane")
	require.NoError(t, err)

	assert.Equal(t, "sent: true\n", out)
	assert.Equal(t, "svc", got["service_id"])
	assert.Equal(t, "tpl", got["template_id"])
	assert.Equal(t, "pub", got["user_id"])
	assert.Equal(t, map[string]any{
		"to_email":  "jane@example.com",
		"to_name":   "Jane",
		"user_name": "Jane",
		"login_url": "http://localhost:5173/login",
		"app_url":   "http://localhost:5173",
	}, got["template_params"])
}

func TestSend_RequiresEmail(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "send", "--name", "A")
	require.Error(t, err)
}

func TestEnvFile_Missing(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "--env-file", "testdata/missing.env", "render")
	require.Error(t, err)
}
