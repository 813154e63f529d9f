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
	"fmt"
)

// Builder accumulates nodes into a device path. It can be backed by a
// caller-supplied fixed-capacity buffer or by a growable buffer. Nodes
// are added with Push and the path is completed with Finalize, which
// appends the End-Entire terminator.
//
// A Push either fully writes a node or fails before committing any
// bytes; previously written nodes are never disturbed by a failed Push.
// The builder owns its buffer exclusively until Finalize converts it
// into a read-only Path.
//
//	b := devicepath.NewBuilder()
//	if err := b.Push(&devicepath.Acpi{Hid: 0x41d00a03, Uid: 0}); err != nil { ... }
//	if err := b.Push(&devicepath.Pci{Function: 0, Device: 0x1f}); err != nil { ... }
//	path, err := b.Finalize()
type Builder struct {
	buf    []byte
	offset int
	fixed  bool
}

// NewBuilder returns a builder backed by a growable buffer. Push cannot
// fail on capacity, and Finalize returns a Path that owns its memory.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewBuilderWithBuf returns a builder backed by the given fixed-capacity
// buffer. Push returns ErrBufferTooSmall when a node doesn't fit in the
// remaining space, and Finalize returns a Path borrowing the buffer.
func NewBuilderWithBuf(buf []byte) *Builder {
	return &Builder{
		buf:   buf[:0],
		fixed: true,
	}
}

// Push appends a node to the path under construction. End-Instance nodes
// may be pushed to separate path instances, but pushing an End-Entire
// node returns ErrUnexpectedEndEntire: the terminator is written by
// Finalize.
func (b *Builder) Push(node NodeValue) error {
	ft := node.FullType()
	if ft == (FullType{DeviceTypeEnd, SubTypeEndEntire}) {
		return ErrUnexpectedEndEntire
	}
	return b.pushAny(node)
}

func (b *Builder) pushAny(node NodeValue) error {
	size, err := node.SizeBytes()
	if err != nil {
		return fmt.Errorf("node %s: %w", node.FullType(), err)
	}
	nodeSize := int(size)
	if b.fixed {
		if b.offset+nodeSize > cap(b.buf) {
			return fmt.Errorf("node %s: %w", node.FullType(), ErrBufferTooSmall)
		}
		b.buf = b.buf[:b.offset+nodeSize]
	} else {
		b.buf = append(b.buf, make([]byte, nodeSize)...)
	}
	node.WriteBytes(b.buf[b.offset : b.offset+nodeSize])
	b.offset += nodeSize
	return nil
}

// Finalize appends the End-Entire node and returns the finished Path.
// For a fixed-buffer builder the Path borrows the caller's buffer; for a
// growable builder the Path owns its memory. The builder must not be
// used again afterwards.
func (b *Builder) Finalize() (*Path, error) {
	if err := b.pushAny(&EndEntire{}); err != nil {
		return nil, err
	}
	return &Path{data: b.buf[:b.offset]}, nil
}
