// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package devicepath

import (
	"errors"
)

// Node conversion errors. These are returned when interpreting raw node
// bytes as a typed node value and are always recoverable: the caller can
// skip the node or treat the path as opaque.
var (
	// ErrInvalidLength is returned when a node's declared length is
	// inconsistent with the layout for its type and subtype, or when a
	// byte slice is too short to contain the structure it claims to hold
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnsupportedType is returned when no layout is known for a node's
	// type and subtype. The UEFI specification reserves ranges for future
	// and vendor-defined nodes, so this is not corruption
	ErrUnsupportedType = errors.New("unsupported node type")
)

// Builder errors. These are local to a single Push or Finalize call and
// recoverable by retrying with different inputs or a larger buffer.
var (
	// ErrBufferTooSmall is returned when a node doesn't fit in the
	// remaining space of a fixed-capacity builder buffer
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrNodeTooBig is returned when a node's computed size doesn't fit
	// in the 16-bit length field of the node header
	ErrNodeTooBig = errors.New("node too big")

	// ErrUnexpectedEndEntire is returned when an End-Entire node is passed
	// to Push. The terminator is written by Finalize
	ErrUnexpectedEndEntire = errors.New("unexpected end-entire node")
)
