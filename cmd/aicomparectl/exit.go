package main

import "aicompare/internal/domain"

const (
	exitFailure    = 1
	exitNotFound   = 3
	exitValidation = 4
	exitConflict   = 5
)

type exitError struct {
	code    int
	message string
	silent  bool
}

func (e exitError) Error() string {
	return e.message
}

func exitSilent(code int) error {
	return exitError{code: code, silent: true}
}

func exitCodeFor(err error) int {
	code, ok := domain.CodeFrom(err)
	if !ok {
		return exitFailure
	}
	switch code {
	case domain.CodeNotFound:
		return exitNotFound
	case domain.CodeInvalidArgument:
		return exitValidation
	case domain.CodeAlreadyExists:
		return exitConflict
	default:
		return exitFailure
	}
}
