// Package mailer sends account-approval notifications.
//
// A [Notifier] renders the approval email from embedded markdown templates and
// hands it to a [Sender]. Providers live in subpackages:
//
//   - emailjs: EmailJS REST API, template parameters only
//   - resend: Resend API, full HTML and text bodies
//
// Delivery problems never escape as errors. [Notifier.SendApprovalEmail]
// returns true only when the provider accepted the message and logs every
// other outcome with enough detail to diagnose it.
//
// # Usage
//
//	sender := emailjs.New(emailjs.Config{
//		ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
//		TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
//		PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
//	})
//
//	n := mailer.NewNotifier(sender, mailer.Config{AppURL: "https://app.example.com"},
//		mailer.WithLogger(log),
//	)
//
//	if !n.SendApprovalEmail(ctx, "jane@example.com", "Jane") {
//		// logged already; fall back to manual follow-up
//	}
//
// When the provider reports missing settings through [Configurable], the
// Notifier switches to log-only mode: the rendered email is written to the
// log at warn level and no network request is made.
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Your account has been approved
//	---
//	Hi {{md .Name}},
//
//	{{button "Log in" .LoginURL}}
//
// Values piped through md are escaped, so a recipient name renders as literal
// text in the HTML body. The button function emits the [!button|Label](URL)
// syntax, rendered as an inline-styled call-to-action link whose href is the
// URL as given. In the plain-text alternative it becomes "Label: URL".
//
// # Outcomes
//
// Each dispatch lands in one [Outcome] bucket. [Classify] maps a Sender error
// to its bucket and [Metrics] counts them.
package mailer
