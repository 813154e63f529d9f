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

// NodeValue is a typed representation of one node kind. Values returned
// by Node.Value alias the node's backing memory for their variable-length
// fields; values constructed directly can be passed to Builder.Push.
type NodeValue interface {
	// FullType returns the node kind's type and subtype pair
	FullType() FullType

	// SizeBytes returns the full encoded size of the node including the
	// header, or ErrNodeTooBig if it doesn't fit in 16 bits
	SizeBytes() (uint16, error)

	// WriteBytes encodes the node, header included, into out. The length
	// of out must equal SizeBytes.
	WriteBytes(out []byte)
}

// Value converts the generic node view into a typed NodeValue for
// matching on the concrete kind. It returns ErrUnsupportedType when the
// kind is not in the layout table (new kinds may appear and must not be
// treated as corruption) and ErrInvalidLength when the node's declared
// length is inconsistent with its kind's layout.
func (n *Node) Value() (NodeValue, error) {
	if _, err := checkNodeLength(n); err != nil {
		return nil, err
	}
	data := n.Data()
	switch n.FullType() {
	// END
	case FullType{DeviceTypeEnd, SubTypeEndInstance}:
		return &EndInstance{}, nil
	case FullType{DeviceTypeEnd, SubTypeEndEntire}:
		return &EndEntire{}, nil
	// HARDWARE
	case FullType{DeviceTypeHardware, SubTypeHardwarePci}:
		return decodePci(data), nil
	case FullType{DeviceTypeHardware, SubTypeHardwarePccard}:
		return decodePccard(data), nil
	case FullType{DeviceTypeHardware, SubTypeHardwareMemoryMapped}:
		return decodeMemoryMapped(data), nil
	case FullType{DeviceTypeHardware, SubTypeHardwareVendor}:
		return decodeHardwareVendor(data), nil
	case FullType{DeviceTypeHardware, SubTypeHardwareController}:
		return decodeController(data), nil
	case FullType{DeviceTypeHardware, SubTypeHardwareBmc}:
		return decodeBmc(data), nil
	// ACPI
	case FullType{DeviceTypeAcpi, SubTypeAcpi}:
		return decodeAcpi(data), nil
	case FullType{DeviceTypeAcpi, SubTypeAcpiExpanded}:
		return decodeAcpiExpanded(data), nil
	case FullType{DeviceTypeAcpi, SubTypeAcpiAdr}:
		return decodeAcpiAdr(data), nil
	case FullType{DeviceTypeAcpi, SubTypeAcpiNvdimm}:
		return decodeAcpiNvdimm(data), nil
	// MESSAGING
	case FullType{DeviceTypeMessaging, SubTypeMessagingAtapi}:
		return decodeAtapi(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingScsi}:
		return decodeScsi(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingFibreChannel}:
		return decodeFibreChannel(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingIeee1394}:
		return decodeIeee1394(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingUsb}:
		return decodeUsb(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingI2o}:
		return decodeI2o(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingInfiniband}:
		return decodeInfiniband(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingVendor}:
		return decodeMessagingVendor(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingMacAddress}:
		return decodeMacAddress(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingIpv4}:
		return decodeIpv4(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingIpv6}:
		return decodeIpv6(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingUart}:
		return decodeUart(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingUsbClass}:
		return decodeUsbClass(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingUsbWwid}:
		return decodeUsbWwid(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingDeviceLogicalUnit}:
		return decodeDeviceLogicalUnit(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingSata}:
		return decodeSata(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingIscsi}:
		return decodeIscsi(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingVlan}:
		return decodeVlan(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingFibreChannelEx}:
		return decodeFibreChannelEx(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingSasEx}:
		return decodeSasEx(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingNvmeNamespace}:
		return decodeNvmeNamespace(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingUri}:
		return decodeUri(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingUfs}:
		return decodeUfs(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingSd}:
		return decodeSd(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingBluetooth}:
		return decodeBluetooth(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingWifi}:
		return decodeWifi(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingEmmc}:
		return decodeEmmc(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingBluetoothLe}:
		return decodeBluetoothLe(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingDns}:
		return decodeDns(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingNvdimmNamespace}:
		return decodeNvdimmNamespace(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingRestService}:
		return decodeRestService(data), nil
	case FullType{DeviceTypeMessaging, SubTypeMessagingNvmeOfNamespace}:
		return decodeNvmeOfNamespace(data), nil
	// MEDIA
	case FullType{DeviceTypeMedia, SubTypeMediaHardDrive}:
		return decodeHardDrive(data), nil
	case FullType{DeviceTypeMedia, SubTypeMediaCdRom}:
		return decodeCdRom(data), nil
	case FullType{DeviceTypeMedia, SubTypeMediaVendor}:
		return decodeMediaVendor(data), nil
	case FullType{DeviceTypeMedia, SubTypeMediaFilePath}:
		return decodeFilePath(data), nil
	case FullType{DeviceTypeMedia, SubTypeMediaProtocol}:
		return decodeMediaProtocol(data), nil
	case FullType{DeviceTypeMedia, SubTypeMediaPiwgFirmwareFile}:
		return decodePiwgFirmwareFile(data), nil
	case FullType{DeviceTypeMedia, SubTypeMediaPiwgFirmwareVolume}:
		return decodePiwgFirmwareVolume(data), nil
	case FullType{DeviceTypeMedia, SubTypeMediaRelativeOffsetRange}:
		return decodeRelativeOffsetRange(data), nil
	case FullType{DeviceTypeMedia, SubTypeMediaRamDisk}:
		return decodeRamDisk(data), nil
	// BIOS_BOOT_SPEC
	case FullType{DeviceTypeBiosBootSpec, SubTypeBiosBootSpec}:
		return decodeBiosBootSpec(data), nil
	}
	// The layout table and this switch cover the same kinds
	return nil, ErrUnsupportedType
}
