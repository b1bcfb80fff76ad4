package workflow

// Error is the custom error type for the workflow package.
type Error string

const (
	// ErrInvalidWorkflow is returned when parsing an unknown workflow name.
	ErrInvalidWorkflow = Error("not a valid workflow")
	// ErrInvalidPriority is returned when parsing an unknown priority name.
	ErrInvalidPriority = Error("not a valid priority")
	// ErrInvalidPrepCategory is returned when parsing an unknown prep category name.
	ErrInvalidPrepCategory = Error("not a valid prep category")
	// ErrQCNotImplemented is returned when sequencing QC is requested for a
	// workflow with no configured QC rules.
	ErrQCNotImplemented = Error("sequencing QC not implemented for workflow")
)

func (e Error) Error() string { return string(e) }
