/*
 * Copyright (c) 2026 TFG Co <backend@tfgco.com>
 * Author: TFG Co <backend@tfgco.com>
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

package errors

import (
	"errors"
	"fmt"
)

// Error classes. Match them with errors.Is.
var (
	// ErrDownstreamUnavailable is retryable: the record is redelivered after the consumer resumes.
	ErrDownstreamUnavailable = errors.New("downstream unavailable")
	// ErrUnexpectedProcessing is not retryable: the record is acknowledged and skipped.
	ErrUnexpectedProcessing = errors.New("unexpected processing error")
	// ErrSchedulingFailure means a pause or resume command could not be applied to the consumer.
	ErrSchedulingFailure = errors.New("scheduling failure")
)

// ProcessingError is returned while handling a record
type ProcessingError struct {
	Key         string
	Description string
	class       error
	cause       error
}

// NewUnavailableError builds a retryable error
func NewUnavailableError(description string, cause ...error) *ProcessingError {
	return newProcessingError(ErrDownstreamUnavailable, "downstream_unavailable", description, cause)
}

// NewUnexpectedError builds a non retryable error
func NewUnexpectedError(description string, cause ...error) *ProcessingError {
	return newProcessingError(ErrUnexpectedProcessing, "unexpected_processing_error", description, cause)
}

// NewSchedulingError builds an error for a pause or resume command that failed
func NewSchedulingError(description string, cause ...error) *ProcessingError {
	return newProcessingError(ErrSchedulingFailure, "scheduling_failure", description, cause)
}

func newProcessingError(class error, key, description string, cause []error) *ProcessingError {
	e := &ProcessingError{
		Key:         key,
		Description: description,
		class:       class,
	}
	if len(cause) == 1 {
		e.cause = cause[0]
	}
	return e
}

func (e *ProcessingError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.class, e.Description, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.class, e.Description)
}

// Is matches the error class
func (e *ProcessingError) Is(target error) bool {
	return target == e.class
}

func (e *ProcessingError) Unwrap() error {
	return e.cause
}

// IsRetryable reports whether the record that caused err must be redelivered
func IsRetryable(err error) bool {
	return errors.Is(err, ErrDownstreamUnavailable)
}

// Reason returns the metric key for err
func Reason(err error) string {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Key
	}
	return "unknown"
}
