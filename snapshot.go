// snapshot.go: the Snapshot Codec — serializes the live set to a
// versioned binary stream and restores it into an empty engine.
//
// Format (little-endian, byte-exact):
//
//	offset  field        type            notes
//	0       version      u32             current value 1
//	4       count        u32             number of entries following
//	...     repeated count times:
//	          key_size   u32             length of key in bytes
//	          key_bytes  u8 * key_size
//	          value_size u32             length of value in bytes
//	          value_bytes u8 * value_size
//
// Per-entry timestamps and access counts are not serialized; restoration
// resets them to the current monotonic clock and 1 respectively.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	errors "github.com/agilira/go-errors"
)

// snapshotRecord is one key/value pair as walked off the recency list,
// destined for (or read back from) the wire format above.
type snapshotRecord struct {
	key   []byte
	value []byte
}

// saveSnapshot writes the engine's live set to path.
//
// The walk traverses tail→head rather than the literal head→tail order
// described for the reference implementation: since load always inserts
// at the head, a tail→head save reproduces the original head→tail recency
// order after a reload instead of inverting it. spec.md §9 ("Open
// question — snapshot order") explicitly permits either direction
// provided save and load agree; this implementation chooses tail→head.
func saveSnapshot(e *engine, path string) error {
	records := e.snapshotEntries(true)

	f, err := os.Create(path)
	if err != nil {
		return NewErrSnapshotIO("create snapshot file", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], snapshotVersion)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(records)))
	if _, err := w.Write(header[:]); err != nil {
		return NewErrSnapshotIO("write snapshot header", err)
	}

	var sizeBuf [4]byte
	for _, r := range records {
		binary.LittleEndian.PutUint32(sizeBuf[:], uint32(len(r.key)))
		if _, err := w.Write(sizeBuf[:]); err != nil {
			return NewErrSnapshotIO("write key size", err)
		}
		if _, err := w.Write(r.key); err != nil {
			return NewErrSnapshotIO("write key bytes", err)
		}
		binary.LittleEndian.PutUint32(sizeBuf[:], uint32(len(r.value)))
		if _, err := w.Write(sizeBuf[:]); err != nil {
			return NewErrSnapshotIO("write value size", err)
		}
		if _, err := w.Write(r.value); err != nil {
			return NewErrSnapshotIO("write value bytes", err)
		}
	}

	if err := w.Flush(); err != nil {
		return NewErrSnapshotIO("flush snapshot file", err)
	}
	return nil
}

// loadSnapshot reads path into e. It reports false when the file does
// not exist, is unreadable, has a short header or a version mismatch, or
// the stream is truncated — per spec.md §4.2's read protocol, none of
// these prevent the call from completing. A non-nil error accompanies the
// format (short header or version mismatch) and truncation cases (not the
// missing-file case, which is the ordinary first-run state; a header too
// short to hold a version is reported with got_version 0) purely as
// diagnostic detail for a caller that wants
// to log it; callers that only care about success MUST check the bool,
// not err, since both format and truncation already report false.
//
// The version header is validated before the engine is cleared: if the
// version does not match, the engine is left untouched rather than
// cleared-then-left-empty. spec.md §9 ("Open question — version mismatch
// vs. clear") flags the reference's clear-first behavior as potentially
// undesirable and permits this validate-first alternative.
func loadSnapshot(e *engine, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, nil
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return false, NewErrSnapshotFormat(path, 0)
	}
	version := binary.LittleEndian.Uint32(header[0:4])
	count := binary.LittleEndian.Uint32(header[4:8])
	if version != snapshotVersion {
		return false, NewErrSnapshotFormat(path, version)
	}

	records := make([]snapshotRecord, 0, count)
	var sizeBuf [4]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
			break
		}
		keySize := binary.LittleEndian.Uint32(sizeBuf[:])
		key := make([]byte, keySize)
		if _, err := io.ReadFull(r, key); err != nil {
			break
		}

		if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
			break
		}
		valueSize := binary.LittleEndian.Uint32(sizeBuf[:])
		value := make([]byte, valueSize)
		if _, err := io.ReadFull(r, value); err != nil {
			break
		}

		records = append(records, snapshotRecord{key: key, value: value})
	}

	truncated := uint32(len(records)) != count

	e.loadEntries(records)

	if truncated {
		return false, NewErrSnapshotTruncated(path, len(records), int(count))
	}
	return true, nil
}

// NewErrSnapshotIO wraps an underlying I/O failure encountered while
// saving or loading a snapshot.
func NewErrSnapshotIO(op string, cause error) error {
	return errors.Wrap(cause, ErrCodeSnapshotIO, "snapshot I/O failed: "+op).
		WithContext("operation", op)
}
