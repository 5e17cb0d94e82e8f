// snapshot_test.go: tests for the Snapshot Codec.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.snap")

	c1, _ := newTestCache(100)
	c1.Put([]byte("p1"), []byte("q1"))
	c1.Put([]byte("p2"), []byte("q2"))
	c1.snapshotPath = path
	if err := c1.SaveSnapshot(); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	c2, _ := newTestCache(100)
	c2.snapshotPath = path
	ok, err := c2.LoadSnapshot()
	if err != nil || !ok {
		t.Fatalf("LoadSnapshot = (%v, %v), want (true, nil)", ok, err)
	}

	for key, want := range map[string]string{"p1": "q1", "p2": "q2"} {
		v, found := c2.Get([]byte(key))
		if !found || string(v) != want {
			t.Fatalf("Get(%q) = (%q, %v), want (%q, true)", key, v, found, want)
		}
	}
}

func TestSnapshotLoadMissingFileReturnsFalseNoError(t *testing.T) {
	e := newTestEngine(10)
	ok, err := loadSnapshot(e, filepath.Join(t.TempDir(), "does-not-exist.snap"))
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if ok {
		t.Fatal("expected false for a missing file")
	}
	if !e.empty() {
		t.Fatal("expected engine to remain untouched when the snapshot file is missing")
	}
}

func TestSnapshotLoadVersionMismatchLeavesEngineUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-version.snap")

	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], 99) // unsupported version
	binary.LittleEndian.PutUint32(header[4:8], 0)
	if err := os.WriteFile(path, header[:], 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newTestEngine(10)
	e.put([]byte("preexisting"), []byte("v"))

	ok, err := loadSnapshot(e, path)
	if ok {
		t.Fatal("expected false for a version mismatch")
	}
	if err == nil || GetErrorCode(err) != ErrCodeSnapshotFormat {
		t.Fatalf("expected an ErrCodeSnapshotFormat error, got %v", err)
	}
	if v, found := e.get([]byte("preexisting")); !found || string(v) != "v" {
		t.Fatal("expected engine to be left untouched on version mismatch")
	}
}

func TestSnapshotLoadTruncatedStreamKeepsPartialData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.snap")

	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], snapshotVersion)
	binary.LittleEndian.PutUint32(header[4:8], 2) // claims 2 records

	var rec1 []byte
	rec1 = appendU32(rec1, 1)
	rec1 = append(rec1, 'a')
	rec1 = appendU32(rec1, 1)
	rec1 = append(rec1, '1')

	body := append(header[:], rec1...) // only one full record present, second missing entirely
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newTestEngine(10)
	ok, err := loadSnapshot(e, path)
	if ok {
		t.Fatal("expected false for a truncated stream")
	}
	if err == nil || GetErrorCode(err) != ErrCodeSnapshotTruncated {
		t.Fatalf("expected an ErrCodeSnapshotTruncated error, got %v", err)
	}
	if !IsRetryable(err) {
		t.Fatal("expected a truncated-stream error to be marked retryable")
	}
	if v, found := e.get([]byte("a")); !found || string(v) != "1" {
		t.Fatal("expected the successfully-read record to remain loaded")
	}
	if e.size() != 1 {
		t.Fatalf("size = %d, want 1 after partial load", e.size())
	}
}

func TestSnapshotLoadCapsAtCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oversized.snap")

	source := newTestEngine(5)
	for i := 0; i < 5; i++ {
		source.put([]byte{byte('a' + i)}, []byte{byte('0' + i)})
	}
	if err := saveSnapshot(source, path); err != nil {
		t.Fatalf("saveSnapshot: %v", err)
	}

	dest := newTestEngine(2)
	ok, err := loadSnapshot(dest, path)
	if err != nil || !ok {
		t.Fatalf("loadSnapshot = (%v, %v), want (true, nil)", ok, err)
	}
	if dest.size() != 2 {
		t.Fatalf("size = %d, want 2 (capped at destination capacity)", dest.size())
	}
}

func TestSaveSnapshotPreservesRecencyAfterReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recency.snap")

	source := newTestEngine(3)
	source.put([]byte("a"), []byte("1"))
	source.put([]byte("b"), []byte("2"))
	source.put([]byte("c"), []byte("3"))
	if err := saveSnapshot(source, path); err != nil {
		t.Fatalf("saveSnapshot: %v", err)
	}

	dest := newTestEngine(3)
	if _, err := loadSnapshot(dest, path); err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}

	keys := dest.keys()
	want := []string{"c", "b", "a"}
	for i, k := range keys {
		if string(k) != want[i] {
			t.Fatalf("keys[%d] = %q, want %q (tail-to-head save order should preserve head-to-tail order on reload)", i, k, want[i])
		}
	}
}

func appendU32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}
