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

// Subtypes of DeviceTypeMessaging
const (
	SubTypeMessagingAtapi             DeviceSubType = 0x01
	SubTypeMessagingScsi              DeviceSubType = 0x02
	SubTypeMessagingFibreChannel      DeviceSubType = 0x03
	SubTypeMessagingIeee1394          DeviceSubType = 0x04
	SubTypeMessagingUsb               DeviceSubType = 0x05
	SubTypeMessagingI2o               DeviceSubType = 0x06
	SubTypeMessagingInfiniband        DeviceSubType = 0x09
	SubTypeMessagingVendor            DeviceSubType = 0x0a
	SubTypeMessagingMacAddress        DeviceSubType = 0x0b
	SubTypeMessagingIpv4              DeviceSubType = 0x0c
	SubTypeMessagingIpv6              DeviceSubType = 0x0d
	SubTypeMessagingUart              DeviceSubType = 0x0e
	SubTypeMessagingUsbClass          DeviceSubType = 0x0f
	SubTypeMessagingUsbWwid           DeviceSubType = 0x10
	SubTypeMessagingDeviceLogicalUnit DeviceSubType = 0x11
	SubTypeMessagingSata              DeviceSubType = 0x12
	SubTypeMessagingIscsi             DeviceSubType = 0x13
	SubTypeMessagingVlan              DeviceSubType = 0x14
	SubTypeMessagingFibreChannelEx    DeviceSubType = 0x15
	SubTypeMessagingSasEx             DeviceSubType = 0x16
	SubTypeMessagingNvmeNamespace     DeviceSubType = 0x17
	SubTypeMessagingUri               DeviceSubType = 0x18
	SubTypeMessagingUfs               DeviceSubType = 0x19
	SubTypeMessagingSd                DeviceSubType = 0x1a
	SubTypeMessagingBluetooth         DeviceSubType = 0x1b
	SubTypeMessagingWifi              DeviceSubType = 0x1c
	SubTypeMessagingEmmc              DeviceSubType = 0x1d
	SubTypeMessagingBluetoothLe       DeviceSubType = 0x1e
	SubTypeMessagingDns               DeviceSubType = 0x1f
	SubTypeMessagingNvdimmNamespace   DeviceSubType = 0x20
	SubTypeMessagingRestService       DeviceSubType = 0x21
	SubTypeMessagingNvmeOfNamespace   DeviceSubType = 0x22
)

// PrimarySecondary selects the primary or secondary ATAPI controller
type PrimarySecondary uint8

const (
	PrimarySecondaryPrimary   PrimarySecondary = 0x00
	PrimarySecondarySecondary PrimarySecondary = 0x01
)

// MasterSlave selects the master or slave ATAPI device
type MasterSlave uint8

const (
	MasterSlaveMaster MasterSlave = 0x00
	MasterSlaveSlave  MasterSlave = 0x01
)

// Ipv4AddressOrigin describes how an IPv4 address was assigned
type Ipv4AddressOrigin uint8

const (
	Ipv4AddressOriginDhcp   Ipv4AddressOrigin = 0x00
	Ipv4AddressOriginStatic Ipv4AddressOrigin = 0x01
)

// Ipv6AddressOrigin describes how an IPv6 address was assigned
type Ipv6AddressOrigin uint8

const (
	Ipv6AddressOriginManual                     Ipv6AddressOrigin = 0x00
	Ipv6AddressOriginStatelessAutoConfiguration Ipv6AddressOrigin = 0x01
	Ipv6AddressOriginStatefulConfiguration      Ipv6AddressOrigin = 0x02
)

// Parity is a UART parity setting
type Parity uint8

const (
	ParityDefault Parity = 0x00
	ParityNo      Parity = 0x01
	ParityEven    Parity = 0x02
	ParityOdd     Parity = 0x03
	ParityMark    Parity = 0x04
	ParitySpace   Parity = 0x05
)

// StopBits is a UART stop bit count
type StopBits uint8

const (
	StopBitsDefault      StopBits = 0x00
	StopBitsOne          StopBits = 0x01
	StopBitsOnePointFive StopBits = 0x02
	StopBitsTwo          StopBits = 0x03
)

// IscsiProtocol is the iSCSI network protocol
type IscsiProtocol uint16

const (
	IscsiProtocolTcp IscsiProtocol = 0x0000
)

// IscsiLoginOptions is a bitmask of iSCSI login options
type IscsiLoginOptions uint16

const (
	IscsiLoginOptionHeaderDigestUsingCrc32 IscsiLoginOptions = 0x0002
	IscsiLoginOptionDataDigestUsingCrc32   IscsiLoginOptions = 0x0008
	IscsiLoginOptionAuthMethodNone         IscsiLoginOptions = 0x0800
	IscsiLoginOptionChapUni                IscsiLoginOptions = 0x1000
)

// BluetoothLeAddressType is a Bluetooth LE device address type
type BluetoothLeAddressType uint8

const (
	BluetoothLeAddressTypePublic BluetoothLeAddressType = 0x00
	BluetoothLeAddressTypeRandom BluetoothLeAddressType = 0x01
)

// DnsAddressType selects the address family of a DNS node's addresses
type DnsAddressType uint8

const (
	DnsAddressTypeIpv4 DnsAddressType = 0x00
	DnsAddressTypeIpv6 DnsAddressType = 0x01
)

// RestServiceType is the type of a REST service
type RestServiceType uint8

const (
	RestServiceTypeRedfish RestServiceType = 0x01
	RestServiceTypeOData   RestServiceType = 0x02
	RestServiceTypeVendor  RestServiceType = 0xff
)

// RestServiceAccessMode is the access mode of a REST service
type RestServiceAccessMode uint8

const (
	RestServiceAccessModeInBand    RestServiceAccessMode = 0x01
	RestServiceAccessModeOutOfBand RestServiceAccessMode = 0x02
)

// Atapi is an ATAPI messaging device path node
type Atapi struct {
	PrimarySecondary  PrimarySecondary
	MasterSlave       MasterSlave
	LogicalUnitNumber uint16
}

func (v *Atapi) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingAtapi}
}

func (v *Atapi) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Atapi) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = uint8(v.PrimarySecondary)
	out[5] = uint8(v.MasterSlave)
	putU16(out, 6, v.LogicalUnitNumber)
}

func decodeAtapi(data []byte) *Atapi {
	return &Atapi{
		PrimarySecondary:  PrimarySecondary(data[0]),
		MasterSlave:       MasterSlave(data[1]),
		LogicalUnitNumber: getU16(data, 2),
	}
}

// Scsi is a SCSI messaging device path node
type Scsi struct {
	TargetId          uint16
	LogicalUnitNumber uint16
}

func (v *Scsi) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingScsi}
}

func (v *Scsi) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Scsi) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU16(out, 4, v.TargetId)
	putU16(out, 6, v.LogicalUnitNumber)
}

func decodeScsi(data []byte) *Scsi {
	return &Scsi{
		TargetId:          getU16(data, 0),
		LogicalUnitNumber: getU16(data, 2),
	}
}

// FibreChannel is a Fibre Channel messaging device path node
type FibreChannel struct {
	WorldWideName     uint64
	LogicalUnitNumber uint64
}

func (v *FibreChannel) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingFibreChannel}
}

func (v *FibreChannel) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *FibreChannel) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, 0)
	putU64(out, 8, v.WorldWideName)
	putU64(out, 16, v.LogicalUnitNumber)
}

func decodeFibreChannel(data []byte) *FibreChannel {
	return &FibreChannel{
		WorldWideName:     getU64(data, 4),
		LogicalUnitNumber: getU64(data, 12),
	}
}

// Ieee1394 is an IEEE 1394 messaging device path node
type Ieee1394 struct {
	// 1394 global unique ID. Note that this is not the same as an
	// EFI GUID.
	Guid [8]byte
}

func (v *Ieee1394) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingIeee1394}
}

func (v *Ieee1394) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Ieee1394) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, 0)
	copy(out[8:16], v.Guid[:])
}

func decodeIeee1394(data []byte) *Ieee1394 {
	v := &Ieee1394{}
	copy(v.Guid[:], data[4:12])
	return v
}

// Usb is a USB messaging device path node
type Usb struct {
	// USB parent port number
	ParentPortNumber uint8
	// USB interface number
	Interface uint8
}

func (v *Usb) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingUsb}
}

func (v *Usb) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Usb) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = v.ParentPortNumber
	out[5] = v.Interface
}

func decodeUsb(data []byte) *Usb {
	return &Usb{
		ParentPortNumber: data[0],
		Interface:        data[1],
	}
}

// I2o is an I2O messaging device path node
type I2o struct {
	TargetId uint32
}

func (v *I2o) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingI2o}
}

func (v *I2o) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *I2o) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, v.TargetId)
}

func decodeI2o(data []byte) *I2o {
	return &I2o{
		TargetId: getU32(data, 0),
	}
}

// Infiniband is an InfiniBand messaging device path node
type Infiniband struct {
	ResourceFlags uint32
	// 128-bit global identifier for the remote fabric port
	PortGid [16]byte
	// IOC GUID if bit 0 of ResourceFlags is unset, or service ID if
	// bit 0 is set
	IocGuidOrServiceId uint64
	TargetPortId       uint64
	DeviceId           uint64
}

func (v *Infiniband) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingInfiniband}
}

func (v *Infiniband) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Infiniband) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, v.ResourceFlags)
	copy(out[8:24], v.PortGid[:])
	putU64(out, 24, v.IocGuidOrServiceId)
	putU64(out, 32, v.TargetPortId)
	putU64(out, 40, v.DeviceId)
}

func decodeInfiniband(data []byte) *Infiniband {
	v := &Infiniband{
		ResourceFlags:      getU32(data, 0),
		IocGuidOrServiceId: getU64(data, 20),
		TargetPortId:       getU64(data, 28),
		DeviceId:           getU64(data, 36),
	}
	copy(v.PortGid[:], data[4:20])
	return v
}

// MessagingVendor is a vendor-defined messaging device path node
type MessagingVendor struct {
	// Vendor-assigned GUID that defines the data that follows
	VendorGuid Guid
	// Vendor-defined data
	VendorDefinedData []byte
}

func (v *MessagingVendor) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingVendor}
}

func (v *MessagingVendor) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.VendorDefinedData))
}

func (v *MessagingVendor) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:20], v.VendorGuid[:])
	copy(out[20:], v.VendorDefinedData)
}

func decodeMessagingVendor(data []byte) *MessagingVendor {
	v := &MessagingVendor{
		VendorDefinedData: data[16:],
	}
	copy(v.VendorGuid[:], data[:16])
	return v
}

// MacAddress is a MAC address messaging device path node
type MacAddress struct {
	// Padded with zeroes if the address is shorter than 32 bytes
	MacAddress [32]byte
	// Network interface type, e.g. 1 for Ethernet
	InterfaceType uint8
}

func (v *MacAddress) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingMacAddress}
}

func (v *MacAddress) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *MacAddress) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:36], v.MacAddress[:])
	out[36] = v.InterfaceType
}

func decodeMacAddress(data []byte) *MacAddress {
	v := &MacAddress{
		InterfaceType: data[32],
	}
	copy(v.MacAddress[:], data[:32])
	return v
}

// Ipv4 is an IPv4 messaging device path node
type Ipv4 struct {
	LocalIpAddress  [4]byte
	RemoteIpAddress [4]byte
	LocalPort       uint16
	RemotePort      uint16
	// Network protocol, e.g. 6 for TCP or 17 for UDP
	Protocol         uint16
	IpAddressOrigin  Ipv4AddressOrigin
	GatewayIpAddress [4]byte
	SubnetMask       [4]byte
}

func (v *Ipv4) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingIpv4}
}

func (v *Ipv4) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Ipv4) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:8], v.LocalIpAddress[:])
	copy(out[8:12], v.RemoteIpAddress[:])
	putU16(out, 12, v.LocalPort)
	putU16(out, 14, v.RemotePort)
	putU16(out, 16, v.Protocol)
	out[18] = uint8(v.IpAddressOrigin)
	copy(out[19:23], v.GatewayIpAddress[:])
	copy(out[23:27], v.SubnetMask[:])
}

func decodeIpv4(data []byte) *Ipv4 {
	v := &Ipv4{
		LocalPort:       getU16(data, 8),
		RemotePort:      getU16(data, 10),
		Protocol:        getU16(data, 12),
		IpAddressOrigin: Ipv4AddressOrigin(data[14]),
	}
	copy(v.LocalIpAddress[:], data[0:4])
	copy(v.RemoteIpAddress[:], data[4:8])
	copy(v.GatewayIpAddress[:], data[15:19])
	copy(v.SubnetMask[:], data[19:23])
	return v
}

// Ipv6 is an IPv6 messaging device path node
type Ipv6 struct {
	LocalIpAddress  [16]byte
	RemoteIpAddress [16]byte
	LocalPort       uint16
	RemotePort      uint16
	// Network protocol, e.g. 6 for TCP or 17 for UDP
	Protocol         uint16
	IpAddressOrigin  Ipv6AddressOrigin
	PrefixLength     uint8
	GatewayIpAddress [16]byte
}

func (v *Ipv6) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingIpv6}
}

func (v *Ipv6) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Ipv6) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:20], v.LocalIpAddress[:])
	copy(out[20:36], v.RemoteIpAddress[:])
	putU16(out, 36, v.LocalPort)
	putU16(out, 38, v.RemotePort)
	putU16(out, 40, v.Protocol)
	out[42] = uint8(v.IpAddressOrigin)
	out[43] = v.PrefixLength
	copy(out[44:60], v.GatewayIpAddress[:])
}

func decodeIpv6(data []byte) *Ipv6 {
	v := &Ipv6{
		LocalPort:       getU16(data, 32),
		RemotePort:      getU16(data, 34),
		Protocol:        getU16(data, 36),
		IpAddressOrigin: Ipv6AddressOrigin(data[38]),
		PrefixLength:    data[39],
	}
	copy(v.LocalIpAddress[:], data[0:16])
	copy(v.RemoteIpAddress[:], data[16:32])
	copy(v.GatewayIpAddress[:], data[40:56])
	return v
}

// Uart is a UART messaging device path node
type Uart struct {
	// Baud rate, or 0 for the device's default
	BaudRate uint64
	// Number of data bits, or 0 for the device's default
	DataBits uint8
	Parity   Parity
	StopBits StopBits
}

func (v *Uart) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingUart}
}

func (v *Uart) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Uart) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, 0)
	putU64(out, 8, v.BaudRate)
	out[16] = v.DataBits
	out[17] = uint8(v.Parity)
	out[18] = uint8(v.StopBits)
}

func decodeUart(data []byte) *Uart {
	return &Uart{
		BaudRate: getU64(data, 4),
		DataBits: data[12],
		Parity:   Parity(data[13]),
		StopBits: StopBits(data[14]),
	}
}

// UsbClass is a USB class messaging device path node
type UsbClass struct {
	// Vendor ID, or 0xffff to match any vendor
	VendorId uint16
	// Product ID, or 0xffff to match any product
	ProductId      uint16
	DeviceClass    uint8
	DeviceSubclass uint8
	DeviceProtocol uint8
}

func (v *UsbClass) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingUsbClass}
}

func (v *UsbClass) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *UsbClass) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU16(out, 4, v.VendorId)
	putU16(out, 6, v.ProductId)
	out[8] = v.DeviceClass
	out[9] = v.DeviceSubclass
	out[10] = v.DeviceProtocol
}

func decodeUsbClass(data []byte) *UsbClass {
	return &UsbClass{
		VendorId:       getU16(data, 0),
		ProductId:      getU16(data, 2),
		DeviceClass:    data[4],
		DeviceSubclass: data[5],
		DeviceProtocol: data[6],
	}
}

// UsbWwid is a USB WWID messaging device path node
type UsbWwid struct {
	InterfaceNumber uint16
	DeviceVendorId  uint16
	DeviceProductId uint16
	// Last 64 (or fewer) UCS-2 characters of the USB serial number
	SerialNumber []uint16
}

// SerialNumberString decodes the serial number as a string, replacing
// any invalid UCS-2 characters
func (v *UsbWwid) SerialNumberString() string {
	return ucs2ToString(v.SerialNumber)
}

func (v *UsbWwid) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingUsbWwid}
}

func (v *UsbWwid) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 2*len(v.SerialNumber))
}

func (v *UsbWwid) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU16(out, 4, v.InterfaceNumber)
	putU16(out, 6, v.DeviceVendorId)
	putU16(out, 8, v.DeviceProductId)
	for i, c := range v.SerialNumber {
		putU16(out, 10+2*i, c)
	}
}

func decodeUsbWwid(data []byte) *UsbWwid {
	return &UsbWwid{
		InterfaceNumber: getU16(data, 0),
		DeviceVendorId:  getU16(data, 2),
		DeviceProductId: getU16(data, 4),
		SerialNumber:    ucs2FromBytes(data[6:]),
	}
}

// DeviceLogicalUnit is a logical unit messaging device path node
type DeviceLogicalUnit struct {
	LogicalUnitNumber uint8
}

func (v *DeviceLogicalUnit) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingDeviceLogicalUnit}
}

func (v *DeviceLogicalUnit) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *DeviceLogicalUnit) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = v.LogicalUnitNumber
}

func decodeDeviceLogicalUnit(data []byte) *DeviceLogicalUnit {
	return &DeviceLogicalUnit{
		LogicalUnitNumber: data[0],
	}
}

// Sata is a SATA messaging device path node
type Sata struct {
	HbaPortNumber uint16
	// Port multiplier port number, or 0xffff if the device is
	// connected directly to the HBA
	PortMultiplierPortNumber uint16
	LogicalUnitNumber        uint16
}

func (v *Sata) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingSata}
}

func (v *Sata) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Sata) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU16(out, 4, v.HbaPortNumber)
	putU16(out, 6, v.PortMultiplierPortNumber)
	putU16(out, 8, v.LogicalUnitNumber)
}

func decodeSata(data []byte) *Sata {
	return &Sata{
		HbaPortNumber:            getU16(data, 0),
		PortMultiplierPortNumber: getU16(data, 2),
		LogicalUnitNumber:        getU16(data, 4),
	}
}

// Iscsi is an iSCSI messaging device path node
type Iscsi struct {
	Protocol          IscsiProtocol
	Options           IscsiLoginOptions
	LogicalUnitNumber [8]byte
	// iSCSI target portal group tag the initiator intends to
	// establish a session with
	TargetPortalGroupTag uint16
	// iSCSI node target name, null-terminated
	IscsiTargetName []byte
}

func (v *Iscsi) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingIscsi}
}

func (v *Iscsi) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.IscsiTargetName))
}

func (v *Iscsi) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU16(out, 4, uint16(v.Protocol))
	putU16(out, 6, uint16(v.Options))
	copy(out[8:16], v.LogicalUnitNumber[:])
	putU16(out, 16, v.TargetPortalGroupTag)
	copy(out[18:], v.IscsiTargetName)
}

func decodeIscsi(data []byte) *Iscsi {
	v := &Iscsi{
		Protocol:             IscsiProtocol(getU16(data, 0)),
		Options:              IscsiLoginOptions(getU16(data, 2)),
		TargetPortalGroupTag: getU16(data, 12),
		IscsiTargetName:      data[14:],
	}
	copy(v.LogicalUnitNumber[:], data[4:12])
	return v
}

// Vlan is a VLAN messaging device path node
type Vlan struct {
	VlanId uint16
}

func (v *Vlan) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingVlan}
}

func (v *Vlan) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Vlan) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU16(out, 4, v.VlanId)
}

func decodeVlan(data []byte) *Vlan {
	return &Vlan{
		VlanId: getU16(data, 0),
	}
}

// FibreChannelEx is a Fibre Channel Ex messaging device path node
type FibreChannelEx struct {
	WorldWideName     [8]byte
	LogicalUnitNumber [8]byte
}

func (v *FibreChannelEx) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingFibreChannelEx}
}

func (v *FibreChannelEx) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *FibreChannelEx) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, 0)
	copy(out[8:16], v.WorldWideName[:])
	copy(out[16:24], v.LogicalUnitNumber[:])
}

func decodeFibreChannelEx(data []byte) *FibreChannelEx {
	v := &FibreChannelEx{}
	copy(v.WorldWideName[:], data[4:12])
	copy(v.LogicalUnitNumber[:], data[12:20])
	return v
}

// SasEx is a Serial Attached SCSI Ex messaging device path node
type SasEx struct {
	SasAddress        [8]byte
	LogicalUnitNumber [8]byte
	Info              uint16
	// Relative target port, or 0 if no port is specified
	RelativeTargetPort uint16
}

func (v *SasEx) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingSasEx}
}

func (v *SasEx) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *SasEx) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:12], v.SasAddress[:])
	copy(out[12:20], v.LogicalUnitNumber[:])
	putU16(out, 20, v.Info)
	putU16(out, 22, v.RelativeTargetPort)
}

func decodeSasEx(data []byte) *SasEx {
	v := &SasEx{
		Info:               getU16(data, 16),
		RelativeTargetPort: getU16(data, 18),
	}
	copy(v.SasAddress[:], data[0:8])
	copy(v.LogicalUnitNumber[:], data[8:16])
	return v
}

// NvmeNamespace is an NVM Express namespace messaging device path node
type NvmeNamespace struct {
	NamespaceIdentifier          uint32
	IeeeExtendedUniqueIdentifier uint64
}

func (v *NvmeNamespace) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingNvmeNamespace}
}

func (v *NvmeNamespace) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *NvmeNamespace) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, v.NamespaceIdentifier)
	putU64(out, 8, v.IeeeExtendedUniqueIdentifier)
}

func decodeNvmeNamespace(data []byte) *NvmeNamespace {
	return &NvmeNamespace{
		NamespaceIdentifier:          getU32(data, 0),
		IeeeExtendedUniqueIdentifier: getU64(data, 4),
	}
}

// Uri is a URI messaging device path node
type Uri struct {
	Value []byte
}

func (v *Uri) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingUri}
}

func (v *Uri) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.Value))
}

func (v *Uri) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:], v.Value)
}

func decodeUri(data []byte) *Uri {
	return &Uri{
		Value: data,
	}
}

// Ufs is a Universal Flash Storage messaging device path node
type Ufs struct {
	TargetId          uint8
	LogicalUnitNumber uint8
}

func (v *Ufs) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingUfs}
}

func (v *Ufs) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Ufs) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = v.TargetId
	out[5] = v.LogicalUnitNumber
}

func decodeUfs(data []byte) *Ufs {
	return &Ufs{
		TargetId:          data[0],
		LogicalUnitNumber: data[1],
	}
}

// Sd is a Secure Digital messaging device path node
type Sd struct {
	SlotNumber uint8
}

func (v *Sd) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingSd}
}

func (v *Sd) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Sd) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = v.SlotNumber
}

func decodeSd(data []byte) *Sd {
	return &Sd{
		SlotNumber: data[0],
	}
}

// Bluetooth is a Bluetooth messaging device path node
type Bluetooth struct {
	// 48-bit Bluetooth device address
	DeviceAddress [6]byte
}

func (v *Bluetooth) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingBluetooth}
}

func (v *Bluetooth) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Bluetooth) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:10], v.DeviceAddress[:])
}

func decodeBluetooth(data []byte) *Bluetooth {
	v := &Bluetooth{}
	copy(v.DeviceAddress[:], data[0:6])
	return v
}

// Wifi is a Wi-Fi messaging device path node
type Wifi struct {
	// Service set identifier, padded with zeroes
	Ssid [32]byte
}

func (v *Wifi) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingWifi}
}

func (v *Wifi) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Wifi) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:36], v.Ssid[:])
}

func decodeWifi(data []byte) *Wifi {
	v := &Wifi{}
	copy(v.Ssid[:], data[0:32])
	return v
}

// Emmc is an eMMC messaging device path node
type Emmc struct {
	SlotNumber uint8
}

func (v *Emmc) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingEmmc}
}

func (v *Emmc) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Emmc) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = v.SlotNumber
}

func decodeEmmc(data []byte) *Emmc {
	return &Emmc{
		SlotNumber: data[0],
	}
}

// BluetoothLe is a Bluetooth LE messaging device path node
type BluetoothLe struct {
	DeviceAddress [6]byte
	AddressType   BluetoothLeAddressType
}

func (v *BluetoothLe) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingBluetoothLe}
}

func (v *BluetoothLe) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *BluetoothLe) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:10], v.DeviceAddress[:])
	out[10] = uint8(v.AddressType)
}

func decodeBluetoothLe(data []byte) *BluetoothLe {
	v := &BluetoothLe{
		AddressType: BluetoothLeAddressType(data[6]),
	}
	copy(v.DeviceAddress[:], data[0:6])
	return v
}

// Dns is a DNS messaging device path node
type Dns struct {
	AddressType DnsAddressType
	// One or more 16-byte address slots. IPv4 addresses occupy the
	// first 4 bytes of a slot.
	Addresses [][16]byte
}

func (v *Dns) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingDns}
}

func (v *Dns) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 16*len(v.Addresses))
}

func (v *Dns) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = uint8(v.AddressType)
	for i, addr := range v.Addresses {
		copy(out[5+16*i:5+16*(i+1)], addr[:])
	}
}

func decodeDns(data []byte) *Dns {
	addrs := make([][16]byte, (len(data)-1)/16)
	for i := range addrs {
		copy(addrs[i][:], data[1+16*i:1+16*(i+1)])
	}
	return &Dns{
		AddressType: DnsAddressType(data[0]),
		Addresses:   addrs,
	}
}

// NvdimmNamespace is an NVDIMM namespace messaging device path node
type NvdimmNamespace struct {
	// Namespace unique label identifier
	Uuid [16]byte
}

func (v *NvdimmNamespace) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingNvdimmNamespace}
}

func (v *NvdimmNamespace) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *NvdimmNamespace) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:20], v.Uuid[:])
}

func decodeNvdimmNamespace(data []byte) *NvdimmNamespace {
	v := &NvdimmNamespace{}
	copy(v.Uuid[:], data[0:16])
	return v
}

// RestService is a REST service messaging device path node
type RestService struct {
	ServiceType RestServiceType
	AccessMode  RestServiceAccessMode
	// For a vendor service type this holds a vendor GUID followed by
	// vendor-defined data; empty otherwise
	VendorGuidAndData []byte
}

// NewRestServiceVendor builds a vendor REST service node
func NewRestServiceVendor(
	accessMode RestServiceAccessMode,
	vendorGuid Guid,
	vendorDefinedData []byte,
) *RestService {
	data := make([]byte, 0, 16+len(vendorDefinedData))
	data = append(data, vendorGuid[:]...)
	data = append(data, vendorDefinedData...)
	return &RestService{
		ServiceType:       RestServiceTypeVendor,
		AccessMode:        accessMode,
		VendorGuidAndData: data,
	}
}

// Vendor returns the vendor GUID and vendor-defined data. The bool
// result is false for non-vendor service types and for vendor nodes
// whose data is too short to hold a GUID.
func (v *RestService) Vendor() (Guid, []byte, bool) {
	if v.ServiceType != RestServiceTypeVendor ||
		len(v.VendorGuidAndData) < 16 {
		return Guid{}, nil, false
	}
	var g Guid
	copy(g[:], v.VendorGuidAndData[:16])
	return g, v.VendorGuidAndData[16:], true
}

func (v *RestService) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingRestService}
}

func (v *RestService) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.VendorGuidAndData))
}

func (v *RestService) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = uint8(v.ServiceType)
	out[5] = uint8(v.AccessMode)
	copy(out[6:], v.VendorGuidAndData)
}

func decodeRestService(data []byte) *RestService {
	return &RestService{
		ServiceType:       RestServiceType(data[0]),
		AccessMode:        RestServiceAccessMode(data[1]),
		VendorGuidAndData: data[2:],
	}
}

// NvmeOfNamespace is an NVMe over Fabrics namespace messaging device
// path node
type NvmeOfNamespace struct {
	// Namespace identifier type (NIDT)
	Nidt uint8
	// Namespace identifier (NID)
	Nid [16]byte
	// Unique identifier of an NVM subsystem, null-terminated
	SubsystemNqn []byte
}

func (v *NvmeOfNamespace) FullType() FullType {
	return FullType{DeviceTypeMessaging, SubTypeMessagingNvmeOfNamespace}
}

func (v *NvmeOfNamespace) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.SubsystemNqn))
}

func (v *NvmeOfNamespace) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = v.Nidt
	copy(out[5:21], v.Nid[:])
	copy(out[21:], v.SubsystemNqn)
}

func decodeNvmeOfNamespace(data []byte) *NvmeOfNamespace {
	v := &NvmeOfNamespace{
		Nidt:         data[0],
		SubsystemNqn: data[17:],
	}
	copy(v.Nid[:], data[1:17])
	return v
}
