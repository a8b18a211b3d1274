package errorvalues

import "errors"

var (
	ErrDocumentNotFound = errors.New("document doesn't exist in storage")
	ErrCorruptDocument  = errors.New("stored document is malformed")
	ErrPersistFailed    = errors.New("saving document failed")
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrSuggestionFailed = errors.New("suggestion service failed")
	ErrInvalidImage     = errors.New("invalid base64 image")
	ErrInvalidRequest   = errors.New("request validation failed")
)
