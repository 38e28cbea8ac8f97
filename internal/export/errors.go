package export

import "errors"

var (
	// ErrEmptyInput is returned when neither markup nor a resume id was
	// supplied. The print engine is never launched in this case.
	ErrEmptyInput = errors.New("no markup or resume id provided")

	// ErrEngine is returned when the print engine failed to produce a PDF.
	ErrEngine = errors.New("print engine failure")
)
