package export

import "errors"

// ErrInvalidInput is returned for requests missing required fields.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnsupportedFile is returned when an uploaded file is neither PDF nor DOCX.
var ErrUnsupportedFile = errors.New("unsupported file type")

// ErrUnsupportedFormat is returned for unknown artifact formats.
var ErrUnsupportedFormat = errors.New("unsupported artifact format")
