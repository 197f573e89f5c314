package services

import "errors"

// Service-level errors mapped to HTTP problems by the transport layer.
// Data-shape errors (empty join, empty filter, insufficient data...) live in
// internal/analytics and pass through the services unchanged.
var (
	// Text-mining errors
	ErrFetchFailed  = errors.New("article fetch failed")
	ErrEmptyArticle = errors.New("article contains no paragraph text")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
