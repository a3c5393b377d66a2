package potter

import (
	"errors"
	"fmt"
)

// ErrFetch matches every error returned by FetchRandomBook.
var ErrFetch = errors.New("fetch book")

// Stage identifies where a fetch failed.
type Stage string

const (
	StageRequest  Stage = "request"
	StageStatus   Stage = "status"
	StageDecode   Stage = "decode"
	StageValidate Stage = "validate"
)

// FetchError wraps a network, status, decode or shape failure.
type FetchError struct {
	Stage Stage
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch book (%s): %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFetch) match any FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

func fetchErr(stage Stage, err error) error {
	return &FetchError{Stage: stage, Err: err}
}
