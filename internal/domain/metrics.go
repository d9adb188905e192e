package domain

// OpStatus labels the outcome of a catalog operation.
type OpStatus string

const (
	// OpStatusSuccess indicates the operation succeeded.
	OpStatusSuccess OpStatus = "success"
	// OpStatusNotFound indicates a lookup missed.
	OpStatusNotFound OpStatus = "not_found"
	// OpStatusInvalid indicates validation rejected the request.
	OpStatusInvalid OpStatus = "invalid"
	// OpStatusConflict indicates a duplicate key.
	OpStatusConflict OpStatus = "conflict"
	// OpStatusError indicates any other failure.
	OpStatusError OpStatus = "error"
)

// StatusFromError maps an operation result to its status label.
func StatusFromError(err error) OpStatus {
	if err == nil {
		return OpStatusSuccess
	}
	code, ok := CodeFrom(err)
	if !ok {
		return OpStatusError
	}
	switch code {
	case CodeNotFound:
		return OpStatusNotFound
	case CodeInvalidArgument:
		return OpStatusInvalid
	case CodeAlreadyExists:
		return OpStatusConflict
	default:
		return OpStatusError
	}
}

// Metrics records catalog activity.
type Metrics interface {
	ObserveMutation(op string, err error)
	ObserveQuery(view string, err error)
	SetCatalogSize(tools int, useCases int)
}

// NoopMetrics discards all observations.
type NoopMetrics struct{}

func (NoopMetrics) ObserveMutation(string, error) {}
func (NoopMetrics) ObserveQuery(string, error)    {}
func (NoopMetrics) SetCatalogSize(int, int)       {}

var _ Metrics = NoopMetrics{}
