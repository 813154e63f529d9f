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

// Package devicepath implements the UEFI device path binary format: a
// self-describing sequence of variable-length, type-tagged nodes that
// encodes hierarchical hardware and firmware addressing information.
//
// A full device path (Path) is made up of one or more path instances,
// each of which is made up of nodes. A path may contain multiple
// instances, but typical paths contain only a single one. The entire
// path always terminates in an End-Entire node, and instances within it
// are separated by End-Instance nodes:
//
//	┌──────┬──────┬──────────────╥───────┬──────────┬────────────┐
//	│ ACPI │ PCI  │ END_INSTANCE ║ CDROM │ FILEPATH │ END_ENTIRE │
//	└──────┴──────┴──────────────╨───────┴──────────┴────────────┘
//
// Node byte layouts are packed with no alignment requirement, so all
// multi-byte fields are read and written through byte-wise little-endian
// accessors rather than by overlaying native structs on raw memory.
package devicepath

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// DeviceType identifies a node's top-level category
type DeviceType uint8

// DeviceSubType identifies a node's specific kind within its category.
// Meaning depends on the DeviceType.
type DeviceSubType uint8

const (
	DeviceTypeHardware     DeviceType = 0x01
	DeviceTypeAcpi         DeviceType = 0x02
	DeviceTypeMessaging    DeviceType = 0x03
	DeviceTypeMedia        DeviceType = 0x04
	DeviceTypeBiosBootSpec DeviceType = 0x05
	DeviceTypeEnd          DeviceType = 0x7f
)

// FullType is a node's type and subtype pair
type FullType struct {
	Type    DeviceType
	SubType DeviceSubType
}

func (f FullType) String() string {
	return fmt.Sprintf("(0x%02x, 0x%02x)", uint8(f.Type), uint8(f.SubType))
}

// HeaderSize is the size of the fixed header at the start of every node
const HeaderSize = 4

// Header is the fixed header present at the start of every node. Length
// is the total size of the node in bytes, including the header itself.
type Header struct {
	Type    DeviceType
	SubType DeviceSubType
	Length  uint16
}

// Reads a header from the first 4 bytes of b. Any 4 bytes form a
// syntactically valid header; semantic validity is checked by callers.
func readHeader(b []byte) Header {
	return Header{
		Type:    DeviceType(b[0]),
		SubType: DeviceSubType(b[1]),
		Length:  binary.LittleEndian.Uint16(b[2:4]),
	}
}

func writeHeader(out []byte, ft FullType, length int) {
	out[0] = uint8(ft.Type)
	out[1] = uint8(ft.SubType)
	// Caller is responsible for the uint16 range check
	binary.LittleEndian.PutUint16(out[2:4], uint16(length))
}

// Node is a read-only view of a single node within a device path. It
// aliases its backing memory and must not outlive it; no API in this
// package mutates a buffer once a view over it has been handed out.
type Node struct {
	data []byte
}

// NewNodeFromBytes returns a view of the node at the start of data. It
// returns ErrInvalidLength if the slice cannot contain a header or the
// header's declared length extends past the end of the slice. No deeper
// validation is performed; use Value for that.
func NewNodeFromBytes(data []byte) (*Node, error) {
	if len(data) < HeaderSize {
		return nil, ErrInvalidLength
	}
	hdr := readHeader(data)
	if int(hdr.Length) < HeaderSize || int(hdr.Length) > len(data) {
		return nil, ErrInvalidLength
	}
	return &Node{data: data[:hdr.Length]}, nil
}

// Header returns the node's fixed header
func (n *Node) Header() Header {
	return readHeader(n.data)
}

// DeviceType returns the node's top-level category
func (n *Node) DeviceType() DeviceType {
	return DeviceType(n.data[0])
}

// DeviceSubType returns the node's kind within its category
func (n *Node) DeviceSubType() DeviceSubType {
	return DeviceSubType(n.data[1])
}

// FullType returns the node's type and subtype pair
func (n *Node) FullType() FullType {
	return FullType{
		Type:    n.DeviceType(),
		SubType: n.DeviceSubType(),
	}
}

// Length returns the total size of the node in bytes, including the header
func (n *Node) Length() uint16 {
	return binary.LittleEndian.Uint16(n.data[2:4])
}

// IsEndEntire returns true if this node ends an entire device path
func (n *Node) IsEndEntire() bool {
	return n.FullType() == FullType{DeviceTypeEnd, SubTypeEndEntire}
}

// Data returns the node's payload, i.e. everything after the header
func (n *Node) Data() []byte {
	return n.data[HeaderSize:]
}

// Bytes returns the node's full encoding, including the header
func (n *Node) Bytes() []byte {
	return n.data
}

// Equal reports whether two nodes have identical encodings
func (n *Node) Equal(other *Node) bool {
	return bytes.Equal(n.data, other.data)
}

// SizeBytes returns the node's existing encoded size. Together with
// WriteBytes this lets an existing node be passed back into a Builder to
// copy it verbatim, e.g. when splicing paths.
func (n *Node) SizeBytes() (uint16, error) {
	return n.Length(), nil
}

// WriteBytes copies the node's encoding into out
func (n *Node) WriteBytes(out []byte) {
	copy(out, n.data)
}

// StopCondition selects when a NodeIter stops yielding nodes
type StopCondition int

const (
	// StopAnyEndNode stops at (and does not yield) any node with the END
	// device type. Used when iterating within one path instance.
	StopAnyEndNode StopCondition = iota

	// StopEndEntireNode stops at (and does not yield) only the End-Entire
	// node. End-Instance markers are yielded.
	StopEndEntireNode

	// StopNoMoreNodes never stops early and yields every node, End nodes
	// included. Used to measure instance boundaries.
	StopNoMoreNodes
)

// NodeIter iterates over the nodes encoded in a byte buffer. Once the
// stop condition fires (or the buffer is exhausted or malformed) the
// iterator stays terminated and Next keeps returning nil.
type NodeIter struct {
	nodes []byte
	stop  StopCondition
}

// NewNodeIter returns an iterator over the nodes in data with the given
// stop condition
func NewNodeIter(data []byte, stop StopCondition) *NodeIter {
	return &NodeIter{
		nodes: data,
		stop:  stop,
	}
}

// Next returns the next node, or nil when iteration is finished
func (it *NodeIter) Next() *Node {
	if len(it.nodes) == 0 {
		return nil
	}
	node, err := NewNodeFromBytes(it.nodes)
	if err != nil {
		// Malformed remainder, terminate rather than overrun
		it.nodes = nil
		return nil
	}
	var stop bool
	switch it.stop {
	case StopAnyEndNode:
		stop = node.DeviceType() == DeviceTypeEnd
	case StopEndEntireNode:
		stop = node.IsEndEntire()
	case StopNoMoreNodes:
		stop = false
	}
	if stop {
		// Clear remaining state so that future calls keep returning nil
		it.nodes = nil
		return nil
	}
	it.nodes = it.nodes[node.Length():]
	return node
}

// Path is a full device path: one or more instances terminated by an
// End-Entire node. A Path is either a borrowed view over caller-owned
// memory or an owned buffer produced by a Builder; either way it is
// read-only.
type Path struct {
	data []byte
}

// NewPathFromBytes returns a view of the device path at the start of
// data. It walks the node headers to find the terminating End-Entire
// node and returns ErrInvalidLength if any node's declared length runs
// past the end of the slice before the terminator is found.
func NewPathFromBytes(data []byte) (*Path, error) {
	total := 0
	for {
		node, err := NewNodeFromBytes(data[total:])
		if err != nil {
			return nil, err
		}
		total += int(node.Length())
		if node.IsEndEntire() {
			break
		}
	}
	return &Path{data: data[:total]}, nil
}

// Bytes returns the path's full encoding, including the End-Entire node
func (p *Path) Bytes() []byte {
	return p.data
}

// Equal reports whether two paths have identical encodings
func (p *Path) Equal(other *Path) bool {
	return bytes.Equal(p.data, other.data)
}

// ToOwned returns a copy of the path backed by freshly allocated memory,
// with no ties to the original backing buffer
func (p *Path) ToOwned() *Path {
	return &Path{data: bytes.Clone(p.data)}
}

// NodeIter returns an iterator over every node in the path up to (but
// not including) the End-Entire node. End-Instance markers are yielded.
func (p *Path) NodeIter() *NodeIter {
	return NewNodeIter(p.data, StopEndEntireNode)
}

// InstanceIter returns an iterator over the path's instances
func (p *Path) InstanceIter() *InstanceIter {
	return &InstanceIter{remaining: p.data}
}

// PathInstance is a single instance within a device path. Its bytes
// include the End node that terminates it (either End-Instance or
// End-Entire).
type PathInstance struct {
	data []byte
}

// Bytes returns the instance's encoding, including its terminating End node
func (i *PathInstance) Bytes() []byte {
	return i.data
}

// ToOwned returns a copy of the instance backed by freshly allocated memory
func (i *PathInstance) ToOwned() *PathInstance {
	return &PathInstance{data: bytes.Clone(i.data)}
}

// NodeIter returns an iterator over the instance's nodes, stopping at
// (and not yielding) its End node
func (i *PathInstance) NodeIter() *NodeIter {
	return NewNodeIter(i.data, StopAnyEndNode)
}

// InstanceIter iterates over the instances in a device path
type InstanceIter struct {
	remaining []byte
}

// Next returns the next instance, or nil when iteration is finished
func (it *InstanceIter) Next() *PathInstance {
	if len(it.remaining) == 0 {
		return nil
	}
	// Find the end of the instance, which can be either kind of End node,
	// counting the bytes up to and including it
	instanceSize := 0
	nodeIter := NewNodeIter(it.remaining, StopNoMoreNodes)
	for {
		node := nodeIter.Next()
		if node == nil {
			break
		}
		instanceSize += int(node.Length())
		if node.DeviceType() == DeviceTypeEnd {
			break
		}
	}
	if instanceSize == 0 {
		// Malformed remainder
		it.remaining = nil
		return nil
	}
	instance := &PathInstance{data: it.remaining[:instanceSize]}
	it.remaining = it.remaining[instanceSize:]
	return instance
}
