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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeNode(t *testing.T, data []byte) NodeValue {
	t.Helper()
	node, err := NewNodeFromBytes(data)
	require.NoError(t, err)
	value, err := node.Value()
	require.NoError(t, err)
	return value
}

// Encodes a node value and checks the result against its original bytes
func checkReencode(t *testing.T, value NodeValue, expected []byte) {
	t.Helper()
	size, err := value.SizeBytes()
	require.NoError(t, err)
	require.Equal(t, len(expected), int(size))
	out := make([]byte, size)
	value.WriteBytes(out)
	assert.Equal(t, expected, out)
}

func TestNodeValueRoundTrip(t *testing.T) {
	testDefs := []struct {
		name  string
		data  []byte
		check func(*testing.T, NodeValue)
	}{
		{
			name: "Pci",
			data: []byte{0x01, 0x01, 0x06, 0x00, 0x00, 0x1f},
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*Pci)
				require.True(t, ok)
				assert.Equal(t, uint8(0x00), v.Function)
				assert.Equal(t, uint8(0x1f), v.Device)
			},
		},
		{
			name: "Acpi",
			data: []byte{
				0x02, 0x01, 0x0c, 0x00,
				0x03, 0x0a, 0xd0, 0x41,
				0x00, 0x00, 0x00, 0x00,
			},
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*Acpi)
				require.True(t, ok)
				assert.Equal(t, uint32(0x41d00a03), v.Hid)
				assert.Equal(t, uint32(0), v.Uid)
			},
		},
		{
			name: "AcpiAdr",
			data: []byte{
				0x02, 0x03, 0x0c, 0x00,
				0x01, 0x00, 0x00, 0x00,
				0x02, 0x00, 0x00, 0x00,
			},
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*AcpiAdr)
				require.True(t, ok)
				assert.Equal(t, []uint32{1, 2}, v.Adr)
			},
		},
		{
			name: "FibreChannelEx",
			data: []byte{
				0x03, 0x15, 0x18, 0x00,
				0x00, 0x00, 0x00, 0x00,
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
			},
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*FibreChannelEx)
				require.True(t, ok)
				assert.Equal(
					t,
					[8]byte{0, 1, 2, 3, 4, 5, 6, 7},
					v.WorldWideName,
				)
				assert.Equal(
					t,
					[8]byte{0, 1, 2, 3, 4, 5, 6, 7},
					v.LogicalUnitNumber,
				)
			},
		},
		{
			name: "Sata",
			data: []byte{
				0x03, 0x12, 0x0a, 0x00,
				0x02, 0x00, 0xff, 0xff, 0x00, 0x00,
			},
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*Sata)
				require.True(t, ok)
				assert.Equal(t, uint16(2), v.HbaPortNumber)
				assert.Equal(
					t,
					uint16(0xffff),
					v.PortMultiplierPortNumber,
				)
				assert.Equal(t, uint16(0), v.LogicalUnitNumber)
			},
		},
		{
			name: "Iscsi",
			data: []byte{
				0x03, 0x13, 0x1a, 0x00,
				// Protocol
				0x00, 0x00,
				// Options
				0x00, 0x08,
				// LUN
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				// Target portal group tag
				0x01, 0x00,
				// Target name
				0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x31, 0x00,
			},
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*Iscsi)
				require.True(t, ok)
				assert.Equal(t, IscsiProtocolTcp, v.Protocol)
				assert.Equal(
					t,
					IscsiLoginOptionAuthMethodNone,
					v.Options,
				)
				assert.Equal(t, uint16(1), v.TargetPortalGroupTag)
				assert.Equal(
					t,
					[]byte("target1\x00"),
					v.IscsiTargetName,
				)
			},
		},
		{
			name: "Uri",
			data: append(
				[]byte{0x03, 0x18, 0x17, 0x00},
				[]byte("https://example.com")...,
			),
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*Uri)
				require.True(t, ok)
				assert.Equal(
					t,
					[]byte("https://example.com"),
					v.Value,
				)
			},
		},
		{
			name: "HardDriveGpt",
			data: []byte{
				0x04, 0x01, 0x2a, 0x00,
				// Partition number
				0x01, 0x00, 0x00, 0x00,
				// Partition start
				0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				// Partition size
				0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00,
				// Partition signature
				0x00, 0x9a, 0xe3, 0x15, 0xd2, 0x1d, 0x00, 0x10,
				0x8d, 0x7f, 0x00, 0xa0, 0xc9, 0x24, 0x08, 0xfc,
				// Partition format, signature type
				0x02, 0x02,
			},
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*HardDrive)
				require.True(t, ok)
				assert.Equal(t, uint32(1), v.PartitionNumber)
				assert.Equal(t, uint64(0x800), v.PartitionStart)
				assert.Equal(t, uint64(0x80000), v.PartitionSize)
				assert.Equal(t, PartitionFormatGpt, v.PartitionFormat)
				guid, ok := v.SignatureGuid()
				require.True(t, ok)
				assert.Equal(
					t,
					"15e39a00-1dd2-1000-8d7f-00a0c92408fc",
					guid.String(),
				)
				_, ok = v.SignatureMbr()
				assert.False(t, ok)
			},
		},
		{
			name: "FilePath",
			data: []byte{
				0x04, 0x04, 0x0e, 0x00,
				0x74, 0x00, 0x65, 0x00, 0x73, 0x00, 0x74, 0x00,
				0x00, 0x00,
			},
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*FilePath)
				require.True(t, ok)
				assert.Equal(t, "test", v.PathNameString())
			},
		},
		{
			name: "BiosBootSpec",
			data: append(
				[]byte{
					0x05, 0x01, 0x0e, 0x00,
					0x02, 0x00,
					0x00, 0x00,
				},
				[]byte("Drive\x00")...,
			),
			check: func(t *testing.T, value NodeValue) {
				v, ok := value.(*BiosBootSpec)
				require.True(t, ok)
				assert.Equal(
					t,
					BbsDeviceTypeHardDrive,
					v.DeviceType,
				)
				assert.Equal(
					t,
					[]byte("Drive\x00"),
					v.DescriptionString,
				)
			},
		},
		{
			name: "EndEntire",
			data: []byte{0x7f, 0xff, 0x04, 0x00},
			check: func(t *testing.T, value NodeValue) {
				_, ok := value.(*EndEntire)
				require.True(t, ok)
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			value := decodeNode(t, testDef.data)
			testDef.check(t, value)
			checkReencode(t, value, testDef.data)
		})
	}
}

func TestNodeValueUnsupportedType(t *testing.T) {
	node, err := NewNodeFromBytes([]byte{0x99, 0x01, 0x04, 0x00})
	require.NoError(t, err)
	_, err = node.Value()
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestNodeValueInvalidLength(t *testing.T) {
	// An ACPI node must be exactly 12 bytes
	node, err := NewNodeFromBytes([]byte{
		0x02, 0x01, 0x0d, 0x00,
		0x03, 0x0a, 0xd0, 0x41,
		0x00, 0x00, 0x00, 0x00,
		0x00,
	})
	require.NoError(t, err)
	_, err = node.Value()
	require.ErrorIs(t, err, ErrInvalidLength)
}

// An unknown node type inside a path must not break iteration over the
// remaining nodes
func TestIterationSkipsUnsupportedType(t *testing.T) {
	data := []byte{
		// Unknown messaging subtype
		0x03, 0x78, 0x06, 0x00, 0xaa, 0xbb,
		// PCI
		0x01, 0x01, 0x06, 0x00, 0x00, 0x1f,
		// End-Entire
		0x7f, 0xff, 0x04, 0x00,
	}
	path, err := NewPathFromBytes(data)
	require.NoError(t, err)
	iter := path.NodeIter()

	first := iter.Next()
	require.NotNil(t, first)
	_, err = first.Value()
	require.ErrorIs(t, err, ErrUnsupportedType)

	second := iter.Next()
	require.NotNil(t, second)
	value, err := second.Value()
	require.NoError(t, err)
	assert.IsType(t, &Pci{}, value)

	assert.Nil(t, iter.Next())
}

func TestAcpiExpandedStrings(t *testing.T) {
	data := []byte{
		0x02, 0x02, 0x19, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
		0x61, 0x00,
		0x62, 0x63, 0x00,
		0x64, 0x65, 0x66, 0x00,
	}
	value := decodeNode(t, data)
	v, ok := value.(*AcpiExpanded)
	require.True(t, ok)
	assert.Equal(t, uint32(1), v.Hid)
	assert.Equal(t, uint32(2), v.Uid)
	assert.Equal(t, uint32(3), v.Cid)
	assert.Equal(t, []byte("a\x00"), v.HidStr())
	assert.Equal(t, []byte("bc\x00"), v.UidStr())
	assert.Equal(t, []byte("def\x00"), v.CidStr())
	checkReencode(t, value, data)

	// NewAcpiExpanded produces the same encoding
	built := NewAcpiExpanded(1, 2, 3, "a", "bc", "def")
	checkReencode(t, built, data)
}

func TestAcpiExpandedMissingSeparators(t *testing.T) {
	// Only one null separator: the UID string has no terminator and
	// runs to the end of the data, the CID string is missing entirely
	data := []byte{
		0x02, 0x02, 0x15, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
		0x61, 0x00,
		0x62, 0x63, 0x64,
	}
	value := decodeNode(t, data)
	v, ok := value.(*AcpiExpanded)
	require.True(t, ok)
	assert.Equal(t, []byte("a\x00"), v.HidStr())
	assert.Equal(t, []byte("bcd"), v.UidStr())
	assert.Empty(t, v.CidStr())
}

func TestRestServiceVendor(t *testing.T) {
	plain := decodeNode(t, []byte{0x03, 0x21, 0x06, 0x00, 0x01, 0x01})
	v, ok := plain.(*RestService)
	require.True(t, ok)
	assert.Equal(t, RestServiceTypeRedfish, v.ServiceType)
	assert.Equal(t, RestServiceAccessModeInBand, v.AccessMode)
	_, _, ok = v.Vendor()
	assert.False(t, ok)

	vendorData := []byte{
		0x03, 0x21, 0x1b, 0x00,
		0xff, 0x02,
		0x90, 0x5a, 0x00, 0xa1, 0x91, 0x65, 0x96, 0x45,
		0x9b, 0xab, 0x1c, 0x42, 0x49, 0xa6, 0xd4, 0xff,
		0x01, 0x02, 0x03, 0x04, 0x05,
	}
	vendor := decodeNode(t, vendorData)
	v, ok = vendor.(*RestService)
	require.True(t, ok)
	assert.Equal(t, RestServiceTypeVendor, v.ServiceType)
	guid, data, ok := v.Vendor()
	require.True(t, ok)
	assert.Equal(
		t,
		"a1005a90-6591-4596-9bab-1c4249a6d4ff",
		guid.String(),
	)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, data)
	checkReencode(t, vendor, vendorData)

	built := NewRestServiceVendor(
		RestServiceAccessModeOutOfBand,
		mustGuid("a1005a90-6591-4596-9bab-1c4249a6d4ff"),
		[]byte{0x01, 0x02, 0x03, 0x04, 0x05},
	)
	checkReencode(t, built, vendorData)
}
