package mailer

import "embed"

//go:embed templates
var templatesFS embed.FS

const (
	approvalTemplate = "approval.md"
	approvalLayout   = "approval.html"
)

var approvalRenderer = NewRendererWithConfig(templatesFS, RendererConfig{
	TemplateDir: "templates",
	LayoutDir:   "templates/layouts",
})

// ApprovalMessage is the rendered account-approval notification.
type ApprovalMessage struct {
	Subject string
	HTML    string
	Text    string
}

type approvalData struct {
	Name     string
	LoginURL string
}

// RenderApproval renders the approval email for name with a call-to-action
// pointing at loginURL. The name is escaped before it reaches the document.
func RenderApproval(name, loginURL string) (*ApprovalMessage, error) {
	result, err := approvalRenderer.Render(approvalLayout, approvalTemplate, approvalData{
		Name:     name,
		LoginURL: loginURL,
	})
	if err != nil {
		return nil, err
	}

	subject, _ := result.Metadata["Subject"].(string)
	return &ApprovalMessage{
		Subject: subject,
		HTML:    result.HTML,
		Text:    result.Text,
	}, nil
}

// ApprovalHTML returns the complete HTML document of the approval email.
// Output is byte-identical for identical inputs.
// It panics only if the embedded templates are broken.
func ApprovalHTML(name, loginURL string) string {
	msg, err := RenderApproval(name, loginURL)
	if err != nil {
		panic(err)
	}
	return msg.HTML
}
