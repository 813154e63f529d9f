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
)

// Subtypes of DeviceTypeAcpi
const (
	SubTypeAcpi         DeviceSubType = 0x01
	SubTypeAcpiExpanded DeviceSubType = 0x02
	SubTypeAcpiAdr      DeviceSubType = 0x03
	SubTypeAcpiNvdimm   DeviceSubType = 0x04
)

// Acpi is an ACPI device path node
type Acpi struct {
	// Device's PnP hardware ID stored in a numeric 32-bit compressed
	// EISA-type ID
	Hid uint32
	// Unique ID that is required by ACPI if two devices have the same HID
	Uid uint32
}

func (v *Acpi) FullType() FullType {
	return FullType{DeviceTypeAcpi, SubTypeAcpi}
}

func (v *Acpi) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *Acpi) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, v.Hid)
	putU32(out, 8, v.Uid)
}

func decodeAcpi(data []byte) *Acpi {
	return &Acpi{
		Hid: getU32(data, 0),
		Uid: getU32(data, 4),
	}
}

// AcpiExpanded is an expanded ACPI device path node. The numeric HID,
// UID, and CID fields are followed by three concatenated null-terminated
// ASCII strings holding their string forms.
type AcpiExpanded struct {
	Hid uint32
	Uid uint32
	Cid uint32
	// Concatenation of the HID, UID, and CID strings, each terminated
	// by a null byte
	Data []byte
}

// NewAcpiExpanded builds an expanded ACPI node from numeric IDs and the
// corresponding ID strings. The strings must not contain null bytes.
func NewAcpiExpanded(
	hid uint32,
	uid uint32,
	cid uint32,
	hidStr string,
	uidStr string,
	cidStr string,
) *AcpiExpanded {
	data := make([]byte, 0, len(hidStr)+len(uidStr)+len(cidStr)+3)
	data = append(data, hidStr...)
	data = append(data, 0)
	data = append(data, uidStr...)
	data = append(data, 0)
	data = append(data, cidStr...)
	data = append(data, 0)
	return &AcpiExpanded{
		Hid:  hid,
		Uid:  uid,
		Cid:  cid,
		Data: data,
	}
}

func (v *AcpiExpanded) FullType() FullType {
	return FullType{DeviceTypeAcpi, SubTypeAcpiExpanded}
}

func (v *AcpiExpanded) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.Data))
}

func (v *AcpiExpanded) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, v.Hid)
	putU32(out, 8, v.Uid)
	putU32(out, 12, v.Cid)
	copy(out[16:], v.Data)
}

// HidStr returns the HID string, including its trailing null byte when
// one is present
func (v *AcpiExpanded) HidStr() []byte {
	return acpiSubstring(v.Data, 0)
}

// UidStr returns the UID string, including its trailing null byte when
// one is present
func (v *AcpiExpanded) UidStr() []byte {
	return acpiSubstring(v.Data, 1)
}

// CidStr returns the CID string, including its trailing null byte when
// one is present
func (v *AcpiExpanded) CidStr() []byte {
	return acpiSubstring(v.Data, 2)
}

// acpiSubstring extracts the nth null-terminated substring from data.
// If data contains fewer null separators than expected the missing
// substrings come back empty rather than failing, and a final substring
// with no terminator runs to the end of data.
func acpiSubstring(data []byte, n int) []byte {
	for i := 0; i < n; i++ {
		idx := bytes.IndexByte(data, 0)
		if idx < 0 {
			return nil
		}
		data = data[idx+1:]
	}
	if idx := bytes.IndexByte(data, 0); idx >= 0 {
		return data[:idx+1]
	}
	return data
}

func decodeAcpiExpanded(data []byte) *AcpiExpanded {
	return &AcpiExpanded{
		Hid:  getU32(data, 0),
		Uid:  getU32(data, 4),
		Cid:  getU32(data, 8),
		Data: data[12:],
	}
}

// AcpiAdr is an ACPI _ADR device path node describing one or more video
// output devices
type AcpiAdr struct {
	// _ADR values. For video output devices the value of this field
	// comes from Table B-2 of the ACPI spec.
	Adr []uint32
}

func (v *AcpiAdr) FullType() FullType {
	return FullType{DeviceTypeAcpi, SubTypeAcpiAdr}
}

func (v *AcpiAdr) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 4*len(v.Adr))
}

func (v *AcpiAdr) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	for i, adr := range v.Adr {
		putU32(out, 4+4*i, adr)
	}
}

func decodeAcpiAdr(data []byte) *AcpiAdr {
	adr := make([]uint32, len(data)/4)
	for i := range adr {
		adr[i] = getU32(data, 4*i)
	}
	return &AcpiAdr{
		Adr: adr,
	}
}

// AcpiNvdimm is an ACPI NVDIMM device path node
type AcpiNvdimm struct {
	NfitDeviceHandle uint32
}

func (v *AcpiNvdimm) FullType() FullType {
	return FullType{DeviceTypeAcpi, SubTypeAcpiNvdimm}
}

func (v *AcpiNvdimm) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *AcpiNvdimm) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, v.NfitDeviceHandle)
}

func decodeAcpiNvdimm(data []byte) *AcpiNvdimm {
	return &AcpiNvdimm{
		NfitDeviceHandle: getU32(data, 0),
	}
}
