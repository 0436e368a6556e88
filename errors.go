package spdist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/spdist/internal/resource"
)

var (
	// ErrVectorSizeMismatch is returned when input sequences do not have the
	// lengths an operation requires.
	ErrVectorSizeMismatch = errors.New("vector size mismatch")

	// ErrMemoryLimitExceeded is returned when a computation's buffers would
	// exceed the memory limit of the configured resource controller.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// SizeMismatchError describes which length check failed.
//
// It matches ErrVectorSizeMismatch via errors.Is.
type SizeMismatchError struct {
	// Operation is the failing call ("distance" or "add").
	Operation string
	// Argument names the sequence whose length was rejected.
	Argument string
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: %v: %s has length %d, expected %d",
		e.Operation, ErrVectorSizeMismatch, e.Argument, e.Actual, e.Expected)
}

func (e *SizeMismatchError) Unwrap() error { return ErrVectorSizeMismatch }
