package resend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/approvalmail/pkg/mailer"
)

func TestSender_BuildRequest(t *testing.T) {
	t.Parallel()

	s := New(Config{APIKey: "re_test", SenderEmail: "team@example.com", SenderName: "Team"})
	req := s.buildRequest(&mailer.Email{
		To:      []string{"jane@example.com"},
		Subject: "Your account has been approved",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
		ReplyTo: "support@example.com",
		Tags:    mailer.SimpleTags("approval"),
	})

	assert.Equal(t, `"Team" <team@example.com>`, req.From)
	assert.Equal(t, []string{"jane@example.com"}, req.To)
	assert.Equal(t, "Your account has been approved", req.Subject)
	assert.Equal(t, "<p>Hi</p>", req.Html)
	assert.Equal(t, "Hi", req.Text)
	assert.Equal(t, "support@example.com", req.ReplyTo)
	require.Len(t, req.Tags, 1)
	assert.Equal(t, "approval", req.Tags[0].Name)
	assert.Equal(t, "true", req.Tags[0].Value)
}

func TestSender_BuildRequest_NoSenderName(t *testing.T) {
	t.Parallel()

	req := New(Config{APIKey: "re_test", SenderEmail: "team@example.com"}).buildRequest(&mailer.Email{})

	assert.Equal(t, "team@example.com", req.From)
	assert.Empty(t, req.Tags)
}

func TestTagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want string
	}{
		{in: nil, want: "true"},
		{in: struct{}{}, want: "true"},
		{in: "approval", want: "approval"},
		{in: false, want: "false"},
		{in: 42, want: "42"},
		{in: int64(7), want: "7"},
		{in: 1.5, want: "1.5"},
		{in: []int{1}, want: "[1]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tagValue(tt.in))
	}
}

func TestConfig_MissingConfig(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"RESEND_API_KEY", "RESEND_FROM_EMAIL"}, Config{}.MissingConfig())
	assert.Empty(t, New(Config{APIKey: "k", SenderEmail: "a@b.com"}).MissingConfig())
}

func TestSender_NilReceiver(t *testing.T) {
	t.Parallel()

	var s *Sender
	require.Equal(t, []string{"RESEND_API_KEY", "RESEND_FROM_EMAIL"}, s.MissingConfig())

	n := mailer.NewNotifier(s, mailer.Config{})
	require.False(t, n.Configured())
	require.NotPanics(t, func() {
		require.False(t, n.SendApprovalEmail(context.Background(), "a@b.com", "A"))
	})
}
