// errors.go: structured error handling for mneme cache operations.
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error
// codes for the few operations that have a failure mode at all:
// construction, snapshot save/load, and GetOrLoad. get/put/remove/clear
// are total functions over their inputs and never return an error.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for mneme cache operations.
const (
	// Configuration errors — construction, or a snapshot call with no
	// snapshot path configured.
	ErrCodeInvalidConfiguration errors.ErrorCode = "MNEME_INVALID_CONFIGURATION"

	// Snapshot errors — surfaced by save_snapshot/load_snapshot.
	ErrCodeSnapshotIO        errors.ErrorCode = "MNEME_SNAPSHOT_IO"
	ErrCodeSnapshotFormat    errors.ErrorCode = "MNEME_SNAPSHOT_FORMAT"
	ErrCodeSnapshotTruncated errors.ErrorCode = "MNEME_SNAPSHOT_TRUNCATED"

	// GetOrLoad errors — the supplemented stampede-safe loader.
	ErrCodeInvalidLoader errors.ErrorCode = "MNEME_INVALID_LOADER"

	// Internal errors.
	ErrCodePanicRecovered errors.ErrorCode = "MNEME_PANIC_RECOVERED"
)

const (
	msgInvalidConfiguration = "invalid cache configuration"
	msgSnapshotIO           = "snapshot I/O failed"
	msgSnapshotFormat       = "snapshot format is not recognized"
	msgSnapshotTruncated    = "snapshot stream ended mid-record"
	msgInvalidLoader        = "loader function cannot be nil"
	msgPanicRecovered       = "panic recovered in cache operation"
)

// NewErrInvalidConfiguration reports a configuration failure: capacity
// <= 0 at construction, or a snapshot save/load requested on a cache
// with no snapshot path configured.
func NewErrInvalidConfiguration(reason string, capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidConfiguration, msgInvalidConfiguration, map[string]interface{}{
		"reason":   reason,
		"capacity": capacity,
	})
}

// NewErrSnapshotFormat reports a version mismatch or malformed header
// encountered while loading a snapshot.
func NewErrSnapshotFormat(path string, gotVersion uint32) error {
	return errors.NewWithContext(ErrCodeSnapshotFormat, msgSnapshotFormat, map[string]interface{}{
		"path":        path,
		"got_version": gotVersion,
		"want_version": snapshotVersion,
	})
}

// NewErrSnapshotTruncated reports a stream that ended before the
// declared record count was satisfied.
func NewErrSnapshotTruncated(path string, gotRecords, wantRecords int) error {
	return errors.NewWithContext(ErrCodeSnapshotTruncated, msgSnapshotTruncated, map[string]interface{}{
		"path":         path,
		"got_records":  gotRecords,
		"want_records": wantRecords,
	}).AsRetryable()
}

// NewErrInvalidLoader reports a nil loader passed to GetOrLoad.
func NewErrInvalidLoader(key string) error {
	return errors.NewWithField(ErrCodeInvalidLoader, msgInvalidLoader, "key", key)
}

// NewErrPanicRecovered wraps a recovered panic from a GetOrLoad loader
// function as an error instead of letting it unwind past the cache.
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": panicValue,
	}).WithSeverity("critical")
}

// IsConfigError reports whether err is a configuration error
// (ErrCodeInvalidConfiguration).
func IsConfigError(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidConfiguration)
}

// IsSnapshotError reports whether err originated from save_snapshot or
// load_snapshot.
func IsSnapshotError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeSnapshotIO || code == ErrCodeSnapshotFormat || code == ErrCodeSnapshotTruncated
	}
	return false
}

// IsRetryable reports whether err can be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from err, or "" if it carries
// none.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts the structured context map from err, or nil.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var mnemeErr *errors.Error
	if goerrors.As(err, &mnemeErr) {
		return mnemeErr.Context
	}
	return nil
}
