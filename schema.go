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
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// FieldKind describes how a fixed field's bytes are interpreted
type FieldKind int

const (
	// FieldUint is a little-endian unsigned integer of 1, 2, 4, or 8 bytes
	FieldUint FieldKind = iota
	// FieldBytes is an opaque byte array
	FieldBytes
	// FieldGuid is a 16-byte EFI GUID in wire order
	FieldGuid
)

// FieldLayout is one fixed-width field within a node's payload. Fields
// are packed in declaration order immediately after the header with no
// padding.
type FieldLayout struct {
	Name  string
	Width int
	Kind  FieldKind
}

// NodeLayout describes the byte layout of one node kind: its ordered
// fixed fields and, if present, a trailing variable-length region whose
// byte count is always a multiple of TrailingElem. The same layout data
// drives both decoding and the builder's size accounting.
type NodeLayout struct {
	Name   string
	Fields []FieldLayout

	// Trailing names the variable-length region following the fixed
	// fields; empty if the node has none
	Trailing string

	// TrailingElem is the element size in bytes of the trailing region
	// (1 for plain bytes); 0 if the node has no trailing region
	TrailingElem int
}

// StaticSize returns the node's fixed encoded size in bytes, header
// included
func (l NodeLayout) StaticSize() int {
	size := HeaderSize
	for _, f := range l.Fields {
		size += f.Width
	}
	return size
}

// LookupLayout returns the layout for a node kind, or false if the kind
// is unknown. Unknown kinds are legal: the UEFI specification reserves
// type and subtype ranges for future and vendor use.
func LookupLayout(ft FullType) (NodeLayout, bool) {
	layout, ok := nodeLayouts[ft]
	return layout, ok
}

// Validates a node's declared length against the layout for its kind.
// Returns ErrUnsupportedType for unknown kinds and ErrInvalidLength when
// the length doesn't cover the fixed fields plus a whole number of
// trailing elements.
func checkNodeLength(n *Node) (NodeLayout, error) {
	layout, ok := LookupLayout(n.FullType())
	if !ok {
		return NodeLayout{}, fmt.Errorf(
			"node %s: %w",
			n.FullType(),
			ErrUnsupportedType,
		)
	}
	length := int(n.Length())
	staticSize := layout.StaticSize()
	if layout.TrailingElem == 0 {
		if length != staticSize {
			return NodeLayout{}, fmt.Errorf(
				"%s node: length %d, expected %d: %w",
				layout.Name,
				length,
				staticSize,
				ErrInvalidLength,
			)
		}
		return layout, nil
	}
	if length < staticSize || (length-staticSize)%layout.TrailingElem != 0 {
		return NodeLayout{}, fmt.Errorf(
			"%s node: length %d, expected %d plus a multiple of %d: %w",
			layout.Name,
			length,
			staticSize,
			layout.TrailingElem,
			ErrInvalidLength,
		)
	}
	return layout, nil
}

// Field is a single decoded field as rendered by DumpFields
type Field struct {
	Name  string
	Value string
}

// DumpFields renders a node's fields as ordered name/value pairs using
// only the layout table, without going through the typed node values.
// This works for any known kind, including ones added to the table
// before a typed representation exists.
func DumpFields(n *Node) ([]Field, error) {
	layout, err := checkNodeLength(n)
	if err != nil {
		return nil, err
	}
	data := n.Data()
	fields := make([]Field, 0, len(layout.Fields)+1)
	offset := 0
	for _, f := range layout.Fields {
		raw := data[offset : offset+f.Width]
		var value string
		switch f.Kind {
		case FieldUint:
			value = fmt.Sprintf("0x%x", getUint(raw))
		case FieldGuid:
			var g Guid
			copy(g[:], raw)
			value = g.String()
		default:
			value = hex.EncodeToString(raw)
		}
		fields = append(fields, Field{Name: f.Name, Value: value})
		offset += f.Width
	}
	if layout.TrailingElem != 0 {
		fields = append(fields, Field{
			Name:  layout.Trailing,
			Value: hex.EncodeToString(data[offset:]),
		})
	}
	return fields, nil
}

func getUint(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 8:
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

// The authoritative encoding of the UEFI specification's device path
// chapter. Field widths are the single source of truth for static sizes
// on both the decode and build sides.
var nodeLayouts = map[FullType]NodeLayout{
	// END
	{DeviceTypeEnd, SubTypeEndInstance}: {
		Name: "EndInstance",
	},
	{DeviceTypeEnd, SubTypeEndEntire}: {
		Name: "EndEntire",
	},
	// HARDWARE
	{DeviceTypeHardware, SubTypeHardwarePci}: {
		Name: "Pci",
		Fields: []FieldLayout{
			{"function", 1, FieldUint},
			{"device", 1, FieldUint},
		},
	},
	{DeviceTypeHardware, SubTypeHardwarePccard}: {
		Name: "Pccard",
		Fields: []FieldLayout{
			{"function", 1, FieldUint},
		},
	},
	{DeviceTypeHardware, SubTypeHardwareMemoryMapped}: {
		Name: "MemoryMapped",
		Fields: []FieldLayout{
			{"memory_type", 4, FieldUint},
			{"start_address", 8, FieldUint},
			{"end_address", 8, FieldUint},
		},
	},
	{DeviceTypeHardware, SubTypeHardwareVendor}: {
		Name: "HardwareVendor",
		Fields: []FieldLayout{
			{"vendor_guid", 16, FieldGuid},
		},
		Trailing:     "vendor_defined_data",
		TrailingElem: 1,
	},
	{DeviceTypeHardware, SubTypeHardwareController}: {
		Name: "Controller",
		Fields: []FieldLayout{
			{"controller_number", 4, FieldUint},
		},
	},
	{DeviceTypeHardware, SubTypeHardwareBmc}: {
		Name: "Bmc",
		Fields: []FieldLayout{
			{"interface_type", 1, FieldUint},
			{"base_address", 8, FieldUint},
		},
	},
	// ACPI
	{DeviceTypeAcpi, SubTypeAcpi}: {
		Name: "Acpi",
		Fields: []FieldLayout{
			{"hid", 4, FieldUint},
			{"uid", 4, FieldUint},
		},
	},
	{DeviceTypeAcpi, SubTypeAcpiExpanded}: {
		Name: "AcpiExpanded",
		Fields: []FieldLayout{
			{"hid", 4, FieldUint},
			{"uid", 4, FieldUint},
			{"cid", 4, FieldUint},
		},
		Trailing:     "data",
		TrailingElem: 1,
	},
	{DeviceTypeAcpi, SubTypeAcpiAdr}: {
		Name:         "AcpiAdr",
		Trailing:     "adr",
		TrailingElem: 4,
	},
	{DeviceTypeAcpi, SubTypeAcpiNvdimm}: {
		Name: "AcpiNvdimm",
		Fields: []FieldLayout{
			{"nfit_device_handle", 4, FieldUint},
		},
	},
	// MESSAGING
	{DeviceTypeMessaging, SubTypeMessagingAtapi}: {
		Name: "Atapi",
		Fields: []FieldLayout{
			{"primary_secondary", 1, FieldUint},
			{"master_slave", 1, FieldUint},
			{"logical_unit_number", 2, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingScsi}: {
		Name: "Scsi",
		Fields: []FieldLayout{
			{"target_id", 2, FieldUint},
			{"logical_unit_number", 2, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingFibreChannel}: {
		Name: "FibreChannel",
		Fields: []FieldLayout{
			{"reserved", 4, FieldUint},
			{"world_wide_name", 8, FieldUint},
			{"logical_unit_number", 8, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingIeee1394}: {
		Name: "Ieee1394",
		Fields: []FieldLayout{
			{"reserved", 4, FieldUint},
			{"guid", 8, FieldBytes},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingUsb}: {
		Name: "Usb",
		Fields: []FieldLayout{
			{"parent_port_number", 1, FieldUint},
			{"interface", 1, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingI2o}: {
		Name: "I2o",
		Fields: []FieldLayout{
			{"target_id", 4, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingInfiniband}: {
		Name: "Infiniband",
		Fields: []FieldLayout{
			{"resource_flags", 4, FieldUint},
			{"port_gid", 16, FieldBytes},
			{"ioc_guid_or_service_id", 8, FieldUint},
			{"target_port_id", 8, FieldUint},
			{"device_id", 8, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingVendor}: {
		Name: "MessagingVendor",
		Fields: []FieldLayout{
			{"vendor_guid", 16, FieldGuid},
		},
		Trailing:     "vendor_defined_data",
		TrailingElem: 1,
	},
	{DeviceTypeMessaging, SubTypeMessagingMacAddress}: {
		Name: "MacAddress",
		Fields: []FieldLayout{
			{"mac_address", 32, FieldBytes},
			{"interface_type", 1, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingIpv4}: {
		Name: "Ipv4",
		Fields: []FieldLayout{
			{"local_ip_address", 4, FieldBytes},
			{"remote_ip_address", 4, FieldBytes},
			{"local_port", 2, FieldUint},
			{"remote_port", 2, FieldUint},
			{"protocol", 2, FieldUint},
			{"ip_address_origin", 1, FieldUint},
			{"gateway_ip_address", 4, FieldBytes},
			{"subnet_mask", 4, FieldBytes},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingIpv6}: {
		Name: "Ipv6",
		Fields: []FieldLayout{
			{"local_ip_address", 16, FieldBytes},
			{"remote_ip_address", 16, FieldBytes},
			{"local_port", 2, FieldUint},
			{"remote_port", 2, FieldUint},
			{"protocol", 2, FieldUint},
			{"ip_address_origin", 1, FieldUint},
			{"prefix_length", 1, FieldUint},
			{"gateway_ip_address", 16, FieldBytes},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingUart}: {
		Name: "Uart",
		Fields: []FieldLayout{
			{"reserved", 4, FieldUint},
			{"baud_rate", 8, FieldUint},
			{"data_bits", 1, FieldUint},
			{"parity", 1, FieldUint},
			{"stop_bits", 1, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingUsbClass}: {
		Name: "UsbClass",
		Fields: []FieldLayout{
			{"vendor_id", 2, FieldUint},
			{"product_id", 2, FieldUint},
			{"device_class", 1, FieldUint},
			{"device_subclass", 1, FieldUint},
			{"device_protocol", 1, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingUsbWwid}: {
		Name: "UsbWwid",
		Fields: []FieldLayout{
			{"interface_number", 2, FieldUint},
			{"device_vendor_id", 2, FieldUint},
			{"device_product_id", 2, FieldUint},
		},
		Trailing:     "serial_number",
		TrailingElem: 2,
	},
	{DeviceTypeMessaging, SubTypeMessagingDeviceLogicalUnit}: {
		Name: "DeviceLogicalUnit",
		Fields: []FieldLayout{
			{"logical_unit_number", 1, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingSata}: {
		Name: "Sata",
		Fields: []FieldLayout{
			{"hba_port_number", 2, FieldUint},
			{"port_multiplier_port_number", 2, FieldUint},
			{"logical_unit_number", 2, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingIscsi}: {
		Name: "Iscsi",
		Fields: []FieldLayout{
			{"protocol", 2, FieldUint},
			{"options", 2, FieldUint},
			{"logical_unit_number", 8, FieldBytes},
			{"target_portal_group_tag", 2, FieldUint},
		},
		Trailing:     "iscsi_target_name",
		TrailingElem: 1,
	},
	{DeviceTypeMessaging, SubTypeMessagingVlan}: {
		Name: "Vlan",
		Fields: []FieldLayout{
			{"vlan_id", 2, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingFibreChannelEx}: {
		Name: "FibreChannelEx",
		Fields: []FieldLayout{
			{"reserved", 4, FieldUint},
			{"world_wide_name", 8, FieldBytes},
			{"logical_unit_number", 8, FieldBytes},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingSasEx}: {
		Name: "SasEx",
		Fields: []FieldLayout{
			{"sas_address", 8, FieldBytes},
			{"logical_unit_number", 8, FieldBytes},
			{"info", 2, FieldUint},
			{"relative_target_port", 2, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingNvmeNamespace}: {
		Name: "NvmeNamespace",
		Fields: []FieldLayout{
			{"namespace_identifier", 4, FieldUint},
			{"ieee_extended_unique_identifier", 8, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingUri}: {
		Name:         "Uri",
		Trailing:     "value",
		TrailingElem: 1,
	},
	{DeviceTypeMessaging, SubTypeMessagingUfs}: {
		Name: "Ufs",
		Fields: []FieldLayout{
			{"target_id", 1, FieldUint},
			{"logical_unit_number", 1, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingSd}: {
		Name: "Sd",
		Fields: []FieldLayout{
			{"slot_number", 1, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingBluetooth}: {
		Name: "Bluetooth",
		Fields: []FieldLayout{
			{"device_address", 6, FieldBytes},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingWifi}: {
		Name: "Wifi",
		Fields: []FieldLayout{
			{"ssid", 32, FieldBytes},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingEmmc}: {
		Name: "Emmc",
		Fields: []FieldLayout{
			{"slot_number", 1, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingBluetoothLe}: {
		Name: "BluetoothLe",
		Fields: []FieldLayout{
			{"device_address", 6, FieldBytes},
			{"address_type", 1, FieldUint},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingDns}: {
		Name: "Dns",
		Fields: []FieldLayout{
			{"address_type", 1, FieldUint},
		},
		Trailing:     "addresses",
		TrailingElem: 16,
	},
	{DeviceTypeMessaging, SubTypeMessagingNvdimmNamespace}: {
		Name: "NvdimmNamespace",
		Fields: []FieldLayout{
			{"uuid", 16, FieldBytes},
		},
	},
	{DeviceTypeMessaging, SubTypeMessagingRestService}: {
		Name: "RestService",
		Fields: []FieldLayout{
			{"service_type", 1, FieldUint},
			{"access_mode", 1, FieldUint},
		},
		Trailing:     "vendor_guid_and_data",
		TrailingElem: 1,
	},
	{DeviceTypeMessaging, SubTypeMessagingNvmeOfNamespace}: {
		Name: "NvmeOfNamespace",
		Fields: []FieldLayout{
			{"nidt", 1, FieldUint},
			{"nid", 16, FieldBytes},
		},
		Trailing:     "subsystem_nqn",
		TrailingElem: 1,
	},
	// MEDIA
	{DeviceTypeMedia, SubTypeMediaHardDrive}: {
		Name: "HardDrive",
		Fields: []FieldLayout{
			{"partition_number", 4, FieldUint},
			{"partition_start", 8, FieldUint},
			{"partition_size", 8, FieldUint},
			{"partition_signature", 16, FieldBytes},
			{"partition_format", 1, FieldUint},
			{"signature_type", 1, FieldUint},
		},
	},
	{DeviceTypeMedia, SubTypeMediaCdRom}: {
		Name: "CdRom",
		Fields: []FieldLayout{
			{"boot_entry", 4, FieldUint},
			{"partition_start", 8, FieldUint},
			{"partition_size", 8, FieldUint},
		},
	},
	{DeviceTypeMedia, SubTypeMediaVendor}: {
		Name: "MediaVendor",
		Fields: []FieldLayout{
			{"vendor_guid", 16, FieldGuid},
		},
		Trailing:     "vendor_defined_data",
		TrailingElem: 1,
	},
	{DeviceTypeMedia, SubTypeMediaFilePath}: {
		Name:         "FilePath",
		Trailing:     "path_name",
		TrailingElem: 2,
	},
	{DeviceTypeMedia, SubTypeMediaProtocol}: {
		Name: "MediaProtocol",
		Fields: []FieldLayout{
			{"protocol_guid", 16, FieldGuid},
		},
	},
	{DeviceTypeMedia, SubTypeMediaPiwgFirmwareFile}: {
		Name:         "PiwgFirmwareFile",
		Trailing:     "data",
		TrailingElem: 1,
	},
	{DeviceTypeMedia, SubTypeMediaPiwgFirmwareVolume}: {
		Name:         "PiwgFirmwareVolume",
		Trailing:     "data",
		TrailingElem: 1,
	},
	{DeviceTypeMedia, SubTypeMediaRelativeOffsetRange}: {
		Name: "RelativeOffsetRange",
		Fields: []FieldLayout{
			{"reserved", 4, FieldUint},
			{"starting_offset", 8, FieldUint},
			{"ending_offset", 8, FieldUint},
		},
	},
	{DeviceTypeMedia, SubTypeMediaRamDisk}: {
		Name: "RamDisk",
		Fields: []FieldLayout{
			{"starting_address", 8, FieldUint},
			{"ending_address", 8, FieldUint},
			{"disk_type", 16, FieldGuid},
			{"disk_instance", 2, FieldUint},
		},
	},
	// BIOS_BOOT_SPEC
	{DeviceTypeBiosBootSpec, SubTypeBiosBootSpec}: {
		Name: "BiosBootSpec",
		Fields: []FieldLayout{
			{"device_type", 2, FieldUint},
			{"status_flag", 2, FieldUint},
		},
		Trailing:     "description_string",
		TrailingElem: 1,
	},
}
