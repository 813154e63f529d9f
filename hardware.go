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

// Subtypes of DeviceTypeHardware
const (
	SubTypeHardwarePci          DeviceSubType = 0x01
	SubTypeHardwarePccard       DeviceSubType = 0x02
	SubTypeHardwareMemoryMapped DeviceSubType = 0x03
	SubTypeHardwareVendor       DeviceSubType = 0x04
	SubTypeHardwareController   DeviceSubType = 0x05
	SubTypeHardwareBmc          DeviceSubType = 0x06
)

// MemoryType mirrors the UEFI memory type enumeration. Values outside
// the defined set are legal and preserved.
type MemoryType uint32

// BmcInterfaceType is the BMC host interface type
type BmcInterfaceType uint8

const (
	BmcInterfaceTypeUnknown                       BmcInterfaceType = 0x00
	BmcInterfaceTypeKeyboardControllerStyle       BmcInterfaceType = 0x01
	BmcInterfaceTypeServerManagementInterfaceChip BmcInterfaceType = 0x02
	BmcInterfaceTypeBlockTransfer                 BmcInterfaceType = 0x03
)

// Pci is a PCI hardware device path node
type Pci struct {
	// PCI function number
	Function uint8
	// PCI device number
	Device uint8
}

func (v *Pci) FullType() FullType {
	return FullType{DeviceTypeHardware, SubTypeHardwarePci}
}

func (v *Pci) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Pci) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = v.Function
	out[5] = v.Device
}

func decodePci(data []byte) *Pci {
	return &Pci{
		Function: data[0],
		Device:   data[1],
	}
}

// Pccard is a PC Card hardware device path node
type Pccard struct {
	// Function number starting from 0
	Function uint8
}

func (v *Pccard) FullType() FullType {
	return FullType{DeviceTypeHardware, SubTypeHardwarePccard}
}

func (v *Pccard) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Pccard) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = v.Function
}

func decodePccard(data []byte) *Pccard {
	return &Pccard{
		Function: data[0],
	}
}

// MemoryMapped is a memory-mapped hardware device path node
type MemoryMapped struct {
	MemoryType   MemoryType
	StartAddress uint64
	EndAddress   uint64
}

func (v *MemoryMapped) FullType() FullType {
	return FullType{DeviceTypeHardware, SubTypeHardwareMemoryMapped}
}

func (v *MemoryMapped) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *MemoryMapped) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, uint32(v.MemoryType))
	putU64(out, 8, v.StartAddress)
	putU64(out, 16, v.EndAddress)
}

func decodeMemoryMapped(data []byte) *MemoryMapped {
	return &MemoryMapped{
		MemoryType:   MemoryType(getU32(data, 0)),
		StartAddress: getU64(data, 4),
		EndAddress:   getU64(data, 12),
	}
}

// HardwareVendor is a vendor-defined hardware device path node
type HardwareVendor struct {
	// Vendor-assigned GUID that defines the data that follows
	VendorGuid Guid
	// Vendor-defined data
	VendorDefinedData []byte
}

func (v *HardwareVendor) FullType() FullType {
	return FullType{DeviceTypeHardware, SubTypeHardwareVendor}
}

func (v *HardwareVendor) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.VendorDefinedData))
}

func (v *HardwareVendor) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:20], v.VendorGuid[:])
	copy(out[20:], v.VendorDefinedData)
}

func decodeHardwareVendor(data []byte) *HardwareVendor {
	v := &HardwareVendor{
		VendorDefinedData: data[16:],
	}
	copy(v.VendorGuid[:], data[:16])
	return v
}

// Controller is a controller hardware device path node
type Controller struct {
	ControllerNumber uint32
}

func (v *Controller) FullType() FullType {
	return FullType{DeviceTypeHardware, SubTypeHardwareController}
}

func (v *Controller) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Controller) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, v.ControllerNumber)
}

func decodeController(data []byte) *Controller {
	return &Controller{
		ControllerNumber: getU32(data, 0),
	}
}

// Bmc is a Baseboard Management Controller host interface hardware
// device path node
type Bmc struct {
	InterfaceType BmcInterfaceType
	// Base address of the BMC. If the least-significant bit is 1 the
	// address is in I/O space, otherwise it is memory-mapped.
	BaseAddress uint64
}

func (v *Bmc) FullType() FullType {
	return FullType{DeviceTypeHardware, SubTypeHardwareBmc}
}

func (v *Bmc) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Bmc) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	out[4] = uint8(v.InterfaceType)
	putU64(out, 5, v.BaseAddress)
}

func decodeBmc(data []byte) *Bmc {
	return &Bmc{
		InterfaceType: BmcInterfaceType(data[0]),
		BaseAddress:   getU64(data, 1),
	}
}
