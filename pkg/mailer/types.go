package mailer

import "net/mail"

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
// Resend uses name-value pairs, presence-only tags become name="true".
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns `"Name" <email>` if name is provided, otherwise just email.
// Non-ASCII names are MIME-encoded.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return (&mail.Address{Name: name, Address: email}).String()
}

// Template parameter keys understood by the provider-hosted approval template.
const (
	ParamToEmail  = "to_email"
	ParamToName   = "to_name"
	ParamUserName = "user_name"
	ParamLoginURL = "login_url"
	ParamAppURL   = "app_url"
)

// Email represents a fully-prepared email message ready for sending.
// Hosted-template providers read TemplateParams, body providers read
// Subject, HTML and Text.
type Email struct {
	Headers        map[string]string // Custom headers
	Tags           Tags              // Provider-specific tags/categories
	TemplateParams map[string]string // Values for provider-hosted templates
	Subject        string            // Email subject
	HTML           string            // HTML body content
	Text           string            // Plain text alternative
	ReplyTo        string            // Reply-to address
	To             []string          // Recipients (at least one required)
}

// ApprovalRequest is the transient input of a single approval notification.
type ApprovalRequest struct {
	Email    string
	Name     string
	LoginURL string
}

// Params returns the flat parameter map sent with the approval email.
// The name is duplicated under to_name and user_name for template compatibility.
func (r ApprovalRequest) Params(appURL string) map[string]string {
	return map[string]string{
		ParamToEmail:  r.Email,
		ParamToName:   r.Name,
		ParamUserName: r.Name,
		ParamLoginURL: r.LoginURL,
		ParamAppURL:   appURL,
	}
}
