package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers. External
// generation failure is deliberately absent: the AI client degrades to a
// fallback string and never surfaces an error.
var (
	// ErrNotFound means no document matched the identifier or slug
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials means an unknown admin or a wrong secret
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken means the admin username already exists
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUnsupportedFileType means the resume extension is not PDF/DOCX
	ErrUnsupportedFileType = errors.New("only PDF and DOCX files are supported")

	// ErrEmptyExtraction means no text could be extracted from the resume
	ErrEmptyExtraction = errors.New("could not extract text from resume")
)
