package contact

import (
	"time"

	"valuemed-backend/internal/common/logger"
)

// Input is the contact form payload. Name, email, and message are
// required; phone and project type are optional.
type Input struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Message     string `json:"message"`
}

type Output struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	MessageID  string    `json:"messageId,omitempty"`
	Provider   string    `json:"provider,omitempty"`
	PreviewURL string    `json:"previewUrl,omitempty"`
	SentAt     time.Time `json:"sentAt,omitempty"`
}

// OutboundEmail is the fully rendered message handed to a Transport.
type OutboundEmail struct {
	From    string
	ReplyTo string
	To      string
	Subject string
	HTML    string
}

type ServiceDependencies struct {
	Logger logger.Logger
}
