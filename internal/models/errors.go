package models

import "errors"

var (
	// ErrInputMissing signals that resume or job text was empty after
	// normalization; the request must be rejected, not retried.
	ErrInputMissing = errors.New("input text missing")

	// ErrChatContextMissing signals a chat request without a prior
	// analysis report attached.
	ErrChatContextMissing = errors.New("chat context missing")

	// ErrArtifactUnavailable signals that the trained match model is not
	// loaded. Scores depending on it degrade to zero instead of failing.
	ErrArtifactUnavailable = errors.New("match model artifact unavailable")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
