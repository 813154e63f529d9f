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

// Subtypes of DeviceTypeBiosBootSpec
const (
	SubTypeBiosBootSpec DeviceSubType = 0x01
)

// BIOS Boot Specification device types
const (
	BbsDeviceTypeFloppy          uint16 = 0x01
	BbsDeviceTypeHardDrive       uint16 = 0x02
	BbsDeviceTypeCdRom           uint16 = 0x03
	BbsDeviceTypePcmcia          uint16 = 0x04
	BbsDeviceTypeUsb             uint16 = 0x05
	BbsDeviceTypeEmbeddedNetwork uint16 = 0x06
	BbsDeviceTypeBev             uint16 = 0x80
	BbsDeviceTypeUnknown         uint16 = 0xff
)

// BiosBootSpec is a BIOS Boot Specification device path node
type BiosBootSpec struct {
	// Device type as defined by the BIOS Boot Specification, e.g.
	// BbsDeviceTypeHardDrive
	DeviceType uint16
	// Status flag as defined by the BIOS Boot Specification
	StatusFlag uint16
	// Description of the boot device, null-terminated
	DescriptionString []byte
}

func (v *BiosBootSpec) FullType() FullType {
	return FullType{DeviceTypeBiosBootSpec, SubTypeBiosBootSpec}
}

func (v *BiosBootSpec) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.DescriptionString))
}

func (v *BiosBootSpec) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU16(out, 4, v.DeviceType)
	putU16(out, 6, v.StatusFlag)
	copy(out[8:], v.DescriptionString)
}

func decodeBiosBootSpec(data []byte) *BiosBootSpec {
	return &BiosBootSpec{
		DeviceType:        getU16(data, 0),
		StatusFlag:        getU16(data, 2),
		DescriptionString: data[4:],
	}
}
