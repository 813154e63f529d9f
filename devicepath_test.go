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
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// An ACPI _ADR path with two entries followed by an End-Entire node
var testAdrPathBytes = []byte{
	0x02, 0x03, 0x0c, 0x00,
	0x01, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x00, 0x00,
	0x7f, 0xff, 0x04, 0x00,
}

// Two instances: ACPI+PCI, then PCI alone
var testMultiInstanceBytes = []byte{
	// ACPI
	0x02, 0x01, 0x0c, 0x00,
	0x03, 0x0a, 0xd0, 0x41,
	0x00, 0x00, 0x00, 0x00,
	// PCI
	0x01, 0x01, 0x06, 0x00,
	0x00, 0x1f,
	// End-Instance
	0x7f, 0x01, 0x04, 0x00,
	// PCI
	0x01, 0x01, 0x06, 0x00,
	0x00, 0x07,
	// End-Entire
	0x7f, 0xff, 0x04, 0x00,
}

func TestNewNodeFromBytes(t *testing.T) {
	testDefs := []struct {
		name    string
		data    []byte
		err     error
		fulltyp FullType
		length  uint16
	}{
		{
			name:    "Valid",
			data:    []byte{0x01, 0x01, 0x06, 0x00, 0x00, 0x1f},
			fulltyp: FullType{DeviceTypeHardware, SubTypeHardwarePci},
			length:  6,
		},
		{
			name: "TooShortForHeader",
			data: []byte{0x01, 0x01, 0x06},
			err:  ErrInvalidLength,
		},
		{
			name: "LengthBelowHeaderSize",
			data: []byte{0x01, 0x01, 0x03, 0x00},
			err:  ErrInvalidLength,
		},
		{
			name: "LengthPastEndOfBuffer",
			data: []byte{0x01, 0x01, 0x08, 0x00, 0x00, 0x1f},
			err:  ErrInvalidLength,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			node, err := NewNodeFromBytes(testDef.data)
			if testDef.err != nil {
				require.ErrorIs(t, err, testDef.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testDef.fulltyp, node.FullType())
			assert.Equal(t, testDef.length, node.Length())
			assert.Equal(
				t,
				testDef.data[:testDef.length],
				node.Bytes(),
			)
		})
	}
}

func TestNewPathFromBytes(t *testing.T) {
	// Extra trailing bytes after the End-Entire node are not part of
	// the path
	data := append(
		bytes.Clone(testAdrPathBytes),
		0xde, 0xad, 0xbe, 0xef,
	)
	path, err := NewPathFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, testAdrPathBytes, path.Bytes())
}

func TestNewPathFromBytesTruncated(t *testing.T) {
	// Drop the End-Entire node so the walk runs off the end
	data := testAdrPathBytes[:12]
	_, err := NewPathFromBytes(data)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestPathNodeIter(t *testing.T) {
	path, err := NewPathFromBytes(testMultiInstanceBytes)
	require.NoError(t, err)
	var fullTypes []FullType
	iter := path.NodeIter()
	for {
		node := iter.Next()
		if node == nil {
			break
		}
		fullTypes = append(fullTypes, node.FullType())
	}
	// End-Instance markers are yielded, End-Entire is not
	assert.Equal(
		t,
		[]FullType{
			{DeviceTypeAcpi, SubTypeAcpi},
			{DeviceTypeHardware, SubTypeHardwarePci},
			{DeviceTypeEnd, SubTypeEndInstance},
			{DeviceTypeHardware, SubTypeHardwarePci},
		},
		fullTypes,
	)
}

func TestNodeIterTerminationIsIdempotent(t *testing.T) {
	iter := NewNodeIter(testAdrPathBytes, StopAnyEndNode)
	require.NotNil(t, iter.Next())
	for i := 0; i < 3; i++ {
		assert.Nil(t, iter.Next())
	}
}

func TestNodeIterMalformedRemainder(t *testing.T) {
	// Valid PCI node followed by a truncated node
	data := []byte{
		0x01, 0x01, 0x06, 0x00, 0x00, 0x1f,
		0x02, 0x01, 0x0c, 0x00, 0x03,
	}
	iter := NewNodeIter(data, StopNoMoreNodes)
	require.NotNil(t, iter.Next())
	assert.Nil(t, iter.Next())
	assert.Nil(t, iter.Next())
}

func TestInstanceIter(t *testing.T) {
	path, err := NewPathFromBytes(testMultiInstanceBytes)
	require.NoError(t, err)
	iter := path.InstanceIter()

	first := iter.Next()
	require.NotNil(t, first)
	// Instance bytes include the terminating End node
	assert.Equal(t, testMultiInstanceBytes[:22], first.Bytes())

	second := iter.Next()
	require.NotNil(t, second)
	assert.Equal(t, testMultiInstanceBytes[22:], second.Bytes())

	assert.Nil(t, iter.Next())
	assert.Nil(t, iter.Next())
}

func TestInstanceNodeIter(t *testing.T) {
	path, err := NewPathFromBytes(testMultiInstanceBytes)
	require.NoError(t, err)
	instIter := path.InstanceIter()
	var counts []int
	for {
		instance := instIter.Next()
		if instance == nil {
			break
		}
		count := 0
		nodeIter := instance.NodeIter()
		for nodeIter.Next() != nil {
			count++
		}
		counts = append(counts, count)
	}
	// End nodes are not yielded by the per-instance iterator
	assert.Equal(t, []int{2, 1}, counts)
}

func TestSingleInstancePath(t *testing.T) {
	path, err := NewPathFromBytes(testAdrPathBytes)
	require.NoError(t, err)
	iter := path.InstanceIter()
	instance := iter.Next()
	require.NotNil(t, instance)
	assert.Equal(t, testAdrPathBytes, instance.Bytes())
	assert.Nil(t, iter.Next())
}

func TestPathToOwned(t *testing.T) {
	data := bytes.Clone(testAdrPathBytes)
	path, err := NewPathFromBytes(data)
	require.NoError(t, err)
	owned := path.ToOwned()
	// Mutating the original buffer must not affect the owned copy
	data[0] = 0xaa
	assert.Equal(t, testAdrPathBytes, owned.Bytes())
	assert.False(t, owned.Equal(path))
}

func TestConcurrentIteration(t *testing.T) {
	defer goleak.VerifyNone(t)
	path, err := NewPathFromBytes(testMultiInstanceBytes)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			iter := path.NodeIter()
			count := 0
			for {
				node := iter.Next()
				if node == nil {
					break
				}
				if _, err := node.Value(); err != nil &&
					!errors.Is(err, ErrUnsupportedType) {
					t.Errorf("unexpected error: %s", err)
				}
				count++
			}
			if count != 4 {
				t.Errorf("got %d nodes, expected 4", count)
			}
		}()
	}
	wg.Wait()
}
