// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

const (
	// Version of the mneme cache library.
	Version = "v0.1.0-dev"

	// snapshotVersion is the current on-disk snapshot format version.
	snapshotVersion uint32 = 1
)
