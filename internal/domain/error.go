package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type ErrorCode string

const (
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeAlreadyExists   ErrorCode = "ALREADY_EXISTS"
	CodeInternal        ErrorCode = "INTERNAL"
)

var (
	ErrToolNotFound       = errors.New("tool not found")
	ErrUseCaseNotFound    = errors.New("use case not found")
	ErrPriorityNotFound   = errors.New("priority not mapped")
	ErrUseCaseExists      = errors.New("use case already exists")
	ErrInvalidScore       = errors.New("score out of range")
	ErrNegativePrice      = errors.New("paid price must be >= 0")
	ErrInvalidPrice       = errors.New("paid price must be finite")
	ErrEmptyScores        = errors.New("tool has no scores")
	ErrSelfComparison     = errors.New("cannot compare a tool with itself")
	ErrUnknownTools       = errors.New("unknown tools referenced")
	ErrInvalidTool        = errors.New("invalid tool")
	ErrInvalidUseCase     = errors.New("invalid use case")
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrEmptySelection     = errors.New("no tools selected")
	ErrInvalidTeamMetrics = errors.New("invalid team metrics")
)

// Error is the error type returned by catalog operations and views.
// Meta carries structured details for rendering, e.g. the unknown names
// of a rejected use case.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
	Meta    map[string]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Op == "" {
		if msg == "" {
			return string(e.Code)
		}
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	if msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, msg)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func E(code ErrorCode, op, msg string, cause error) *Error {
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Code:    code,
		Op:      op,
		Message: msg,
		Cause:   cause,
	}
}

// WithMeta returns e with key set in its metadata.
func (e *Error) WithMeta(key, value string) *Error {
	if e == nil {
		return nil
	}
	if e.Meta == nil {
		e.Meta = make(map[string]string)
	}
	e.Meta[key] = value
	return e
}

func Wrap(code ErrorCode, op string, err error) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		if existing.Op != "" || op == "" {
			return existing
		}
		return &Error{
			Code:    existing.Code,
			Op:      op,
			Message: existing.Message,
			Cause:   existing.Cause,
			Meta:    existing.Meta,
		}
	}
	return E(code, op, "", err)
}

// NotFound builds a NOT_FOUND error for a missing key.
func NotFound(op string, cause error, key string) *Error {
	return E(CodeNotFound, op, fmt.Sprintf("%s: %q", cause.Error(), key), cause).WithMeta("key", key)
}

// Problem is one validation failure: the sentinel it maps to and a
// human-readable detail naming the offending field.
type Problem struct {
	Err    error
	Detail string
}

// Invalid builds an INVALID_ARGUMENT error from a list of problems. The
// distinct sentinels of the problems are joined under base so errors.Is
// matches any of them.
func Invalid(op string, base error, problems ...Problem) *Error {
	causes := []error{base}
	seen := map[error]struct{}{base: {}}
	details := make([]string, 0, len(problems))
	for _, p := range problems {
		if p.Err != nil {
			if _, ok := seen[p.Err]; !ok {
				seen[p.Err] = struct{}{}
				causes = append(causes, p.Err)
			}
		}
		if p.Detail != "" {
			details = append(details, p.Detail)
		}
	}
	msg := base.Error()
	if len(details) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(details, "; "))
	}
	cause := base
	if len(causes) > 1 {
		cause = errors.Join(causes...)
	}
	return E(CodeInvalidArgument, op, msg, cause)
}

// Conflict builds an ALREADY_EXISTS error for a duplicate key.
func Conflict(op string, cause error, key string) *Error {
	return E(CodeAlreadyExists, op, fmt.Sprintf("%s: %q", cause.Error(), key), cause).WithMeta("key", key)
}

// UnknownToolsError reports use-case references that are absent from the catalog.
func UnknownToolsError(op string, unknown []string) *Error {
	names := append([]string(nil), unknown...)
	sort.Strings(names)
	return Invalid(op, ErrUnknownTools, Problem{Detail: strings.Join(names, ", ")}).
		WithMeta("unknown", strings.Join(names, ","))
}

func CodeFrom(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Code != "" {
		return domainErr.Code, true
	}
	switch {
	case errors.Is(err, ErrToolNotFound), errors.Is(err, ErrUseCaseNotFound), errors.Is(err, ErrPriorityNotFound):
		return CodeNotFound, true
	case errors.Is(err, ErrUseCaseExists):
		return CodeAlreadyExists, true
	case errors.Is(err, ErrInvalidScore), errors.Is(err, ErrNegativePrice), errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrEmptyScores), errors.Is(err, ErrSelfComparison), errors.Is(err, ErrUnknownTools), errors.Is(err, ErrInvalidTool),
		errors.Is(err, ErrInvalidUseCase), errors.Is(err, ErrInvalidCatalog), errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrInvalidTeamMetrics):
		return CodeInvalidArgument, true
	default:
		return "", false
	}
}

func IsNotFound(err error) bool {
	code, ok := CodeFrom(err)
	return ok && code == CodeNotFound
}

func IsValidation(err error) bool {
	code, ok := CodeFrom(err)
	return ok && code == CodeInvalidArgument
}

func IsConflict(err error) bool {
	code, ok := CodeFrom(err)
	return ok && code == CodeAlreadyExists
}
