// Package errors provides custom error types for the reconciliation
// system. These errors enable programmatic error checking and keep the
// contract-violation channel separate from the data-quality policy:
// malformed field values are never errors, they are compared as opaque
// strings by the comparators themselves.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the reconciliation system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrContract indicates a programmer-contract violation, such as a
	// nil field map passed to the orchestrator. Contract violations fail
	// fast instead of degrading into verdicts.
	ErrContract = errors.New("contract violation")

	// ErrTableInvalid indicates that a data table (alias pairs, validity
	// policies) could not be loaded or parsed.
	ErrTableInvalid = errors.New("table invalid")
)

// ContractError represents a violated caller contract.
type ContractError struct {
	Op     string
	Reason string
}

// Error implements the error interface
func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is implements errors.Is support
func (e *ContractError) Is(target error) bool {
	return target == ErrContract
}

// NewContractError creates a new ContractError
func NewContractError(op, reason string) *ContractError {
	return &ContractError{Op: op, Reason: reason}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// TableError represents a failure loading one of the versioned data
// tables (organization aliases, validity policies, fixtures).
type TableError struct {
	Table string
	Err   error
}

// Error implements the error interface
func (e *TableError) Error() string {
	return fmt.Sprintf("table %s: %v", e.Table, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TableError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TableError) Is(target error) bool {
	return target == ErrTableInvalid
}

// NewTableError creates a new TableError
func NewTableError(table string, err error) *TableError {
	return &TableError{Table: table, Err: err}
}

// Helper functions for error checking

// IsContract checks if an error is a contract violation
func IsContract(err error) bool {
	return errors.Is(err, ErrContract)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
