package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrProviderUnavailable indicates the provider client could not be acquired.
	ErrProviderUnavailable = errors.New("email provider unavailable")
)

// ValidationError is returned by a Sender when the provider rejects the
// request itself (bad service, template or parameters).
type ValidationError struct {
	Message string
	Status  int
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider rejected request: status %d", e.Status)
	}
	return fmt.Sprintf("provider rejected request: status %d: %s", e.Status, e.Message)
}

// TransportError covers every other provider or network failure.
// Status is zero when no HTTP response was received.
type TransportError struct {
	Err    error
	Body   string
	Status int
}

func (e *TransportError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return "provider request failed: " + e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("provider request failed: status %d: %v", e.Status, e.Err)
	default:
		return fmt.Sprintf("provider request failed: status %d: %s", e.Status, e.Body)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }
