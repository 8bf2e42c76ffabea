package mailer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApprovalHTML(t *testing.T) {
	t.Parallel()

	html := ApprovalHTML("Jane Doe", "https://app.example.com/login")

	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, "Hi Jane Doe,")
	require.Contains(t, html, `href="https://app.example.com/login"`)
	require.Contains(t, html, "Log in to your account")
	require.Contains(t, html, "<title>Your account has been approved</title>")
	require.Contains(t, html, "</html>")
}

func TestApprovalHTML_Deterministic(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"Jane Doe", "https://app.example.com/login"},
		{"", ""},
		{"Zoë 山田", "http://localhost:5173/login"},
	}

	for _, p := range pairs {
		require.Equal(t, ApprovalHTML(p[0], p[1]), ApprovalHTML(p[0], p[1]))
	}
	require.NotEqual(t, ApprovalHTML("Jane", "https://a.example.com/login"), ApprovalHTML("John", "https://a.example.com/login"))
}

func TestApprovalHTML_EscapesName(t *testing.T) {
	t.Parallel()

	html := ApprovalHTML(`<script>alert("x")</script>`, "https://app.example.com/login")

	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "Hi &lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;,")
}

func TestRenderApproval(t *testing.T) {
	t.Parallel()

	msg, err := RenderApproval("Jane Doe", "https://app.example.com/login")
	require.NoError(t, err)

	require.Equal(t, "Your account has been approved", msg.Subject)
	require.Contains(t, msg.Text, "Hi Jane Doe,")
	require.Contains(t, msg.Text, "https://app.example.com/login")
	require.NotContains(t, msg.Text, "<p>")
	require.Equal(t, ApprovalHTML("Jane Doe", "https://app.example.com/login"), msg.HTML)
}

var (
	buttonHref = regexp.MustCompile(`<a href="([^"]*)" style=`)
	htmlEscape = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
)

func TestApprovalHTML_CarriesInputsVerbatim(t *testing.T) {
	t.Parallel()

	names := []string{
		"Jane Doe",
		"O'Brien-Smith",
		"*bold* _em_ `code`",
		"[x](http://evil.example.com)",
		"<b>Bob</b> & Co",
		`back\slash`,
		"Zoë 山田",
		"#1 fan! {curly} |pipe|",
	}
	urls := []string{
		"https://app.example.com/login",
		"https://app.example.com/wiki/Foo_(bar)/login",
		"https://app.example.com/login?next=(home)",
		"https://app.example.com/login?next=)",
		"https://app.example.com/login?a=1&b=2",
		"https://app.example.com/log in",
		`https://app.example.com/login\path`,
		`https://app.example.com/login?q="x"#frag]`,
		"https://app.example.com/login?x=<y>",
	}

	for _, name := range names {
		for _, url := range urls {
			html := ApprovalHTML(name, url)

			matches := buttonHref.FindAllStringSubmatch(html, -1)
			require.Len(t, matches, 1, url)
			require.Equal(t, htmlEscape.Replace(url), matches[0][1], url)

			require.Contains(t, html, "<p>Hi "+htmlEscape.Replace(name)+",</p>", name)
			require.Contains(t, html, "copy this link into your browser: "+htmlEscape.Replace(url)+"</p>", url)
			require.NotContains(t, html, "[!button")
		}
	}
}

func TestRenderApproval_PlainTextCallToAction(t *testing.T) {
	t.Parallel()

	url := "https://app.example.com/wiki/Foo_(bar)/login"
	msg, err := RenderApproval("Jane", url)
	require.NoError(t, err)

	require.Contains(t, msg.Text, "Log in to your account: "+url+"\n")
	require.NotContains(t, msg.Text, "[!button")
	require.NotContains(t, msg.Text, "\\)")
}
