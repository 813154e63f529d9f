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

func TestLayoutStaticSizes(t *testing.T) {
	testDefs := []struct {
		fulltyp FullType
		size    int
	}{
		{FullType{DeviceTypeEnd, SubTypeEndEntire}, 4},
		{FullType{DeviceTypeHardware, SubTypeHardwarePci}, 6},
		{FullType{DeviceTypeHardware, SubTypeHardwareMemoryMapped}, 24},
		{FullType{DeviceTypeAcpi, SubTypeAcpi}, 12},
		{FullType{DeviceTypeAcpi, SubTypeAcpiExpanded}, 16},
		{FullType{DeviceTypeMessaging, SubTypeMessagingIpv4}, 27},
		{FullType{DeviceTypeMessaging, SubTypeMessagingIpv6}, 60},
		{FullType{DeviceTypeMessaging, SubTypeMessagingFibreChannelEx}, 24},
		{FullType{DeviceTypeMessaging, SubTypeMessagingIscsi}, 18},
		{FullType{DeviceTypeMessaging, SubTypeMessagingRestService}, 6},
		{FullType{DeviceTypeMedia, SubTypeMediaHardDrive}, 42},
		{FullType{DeviceTypeMedia, SubTypeMediaRamDisk}, 38},
		{FullType{DeviceTypeBiosBootSpec, SubTypeBiosBootSpec}, 8},
	}
	for _, testDef := range testDefs {
		layout, ok := LookupLayout(testDef.fulltyp)
		require.True(t, ok, "no layout for %s", testDef.fulltyp)
		assert.Equal(
			t,
			testDef.size,
			layout.StaticSize(),
			"wrong static size for %s",
			layout.Name,
		)
	}
}

func TestLookupLayoutUnknown(t *testing.T) {
	_, ok := LookupLayout(FullType{DeviceType(0x99), DeviceSubType(0x01)})
	assert.False(t, ok)
}

func TestEveryLayoutDecodes(t *testing.T) {
	// Every known kind must decode from a zero-filled payload of its
	// static size and re-encode to the same bytes
	for fulltyp, layout := range nodeLayouts {
		data := make([]byte, layout.StaticSize())
		data[0] = uint8(fulltyp.Type)
		data[1] = uint8(fulltyp.SubType)
		putU16(data, 2, uint16(len(data)))
		node, err := NewNodeFromBytes(data)
		require.NoError(t, err, "%s", layout.Name)
		value, err := node.Value()
		require.NoError(t, err, "%s", layout.Name)
		assert.Equal(
			t,
			fulltyp,
			value.FullType(),
			"wrong full type for %s",
			layout.Name,
		)
		size, err := value.SizeBytes()
		require.NoError(t, err, "%s", layout.Name)
		require.Equal(t, len(data), int(size), "%s", layout.Name)
		out := make([]byte, size)
		value.WriteBytes(out)
		assert.Equal(t, data, out, "re-encode mismatch for %s", layout.Name)
	}
}

func TestDumpFields(t *testing.T) {
	node, err := NewNodeFromBytes(
		[]byte{0x01, 0x01, 0x06, 0x00, 0x05, 0x1f},
	)
	require.NoError(t, err)
	fields, err := DumpFields(node)
	require.NoError(t, err)
	assert.Equal(
		t,
		[]Field{
			{Name: "function", Value: "0x5"},
			{Name: "device", Value: "0x1f"},
		},
		fields,
	)
}

func TestDumpFieldsGuidAndTrailing(t *testing.T) {
	node, err := NewNodeFromBytes([]byte{
		0x01, 0x04, 0x16, 0x00,
		0x90, 0x5a, 0x00, 0xa1, 0x91, 0x65, 0x96, 0x45,
		0x9b, 0xab, 0x1c, 0x42, 0x49, 0xa6, 0xd4, 0xff,
		0xca, 0xfe,
	})
	require.NoError(t, err)
	fields, err := DumpFields(node)
	require.NoError(t, err)
	assert.Equal(
		t,
		[]Field{
			{
				Name:  "vendor_guid",
				Value: "a1005a90-6591-4596-9bab-1c4249a6d4ff",
			},
			{
				Name:  "vendor_defined_data",
				Value: "cafe",
			},
		},
		fields,
	)
}

func TestDumpFieldsErrors(t *testing.T) {
	unknown, err := NewNodeFromBytes([]byte{0x99, 0x01, 0x04, 0x00})
	require.NoError(t, err)
	_, err = DumpFields(unknown)
	require.ErrorIs(t, err, ErrUnsupportedType)

	// An ADR node's trailing region must be a multiple of 4 bytes
	badTrailing, err := NewNodeFromBytes(
		[]byte{0x02, 0x03, 0x06, 0x00, 0x01, 0x00},
	)
	require.NoError(t, err)
	_, err = DumpFields(badTrailing)
	require.ErrorIs(t, err, ErrInvalidLength)
}
