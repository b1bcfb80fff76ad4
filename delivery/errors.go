package delivery

// Error is the custom error type for the delivery package.
type Error string

const (
	// ErrMissingBundle is returned when a case or sample has no stored file
	// bundle on a workflow that requires one. It indicates a data problem,
	// not a transient condition.
	ErrMissingBundle = Error("no file bundle found")
	// ErrNoSampleFiles is returned when a deliverable sample's bundle yields
	// no files for delivery; silently delivering nothing for an eligible
	// sample is never acceptable.
	ErrNoSampleFiles = Error("no files to deliver for sample")
)

func (e Error) Error() string { return string(e) }
