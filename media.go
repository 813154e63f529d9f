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

// Subtypes of DeviceTypeMedia
const (
	SubTypeMediaHardDrive           DeviceSubType = 0x01
	SubTypeMediaCdRom               DeviceSubType = 0x02
	SubTypeMediaVendor              DeviceSubType = 0x03
	SubTypeMediaFilePath            DeviceSubType = 0x04
	SubTypeMediaProtocol            DeviceSubType = 0x05
	SubTypeMediaPiwgFirmwareFile    DeviceSubType = 0x06
	SubTypeMediaPiwgFirmwareVolume  DeviceSubType = 0x07
	SubTypeMediaRelativeOffsetRange DeviceSubType = 0x08
	SubTypeMediaRamDisk             DeviceSubType = 0x09
)

// PartitionFormat is a hard drive partition table format
type PartitionFormat uint8

const (
	PartitionFormatMbr PartitionFormat = 0x01
	PartitionFormatGpt PartitionFormat = 0x02
)

// SignatureType describes what a hard drive node's partition signature
// field holds
type SignatureType uint8

const (
	SignatureTypeNone SignatureType = 0x00
	SignatureTypeMbr  SignatureType = 0x01
	SignatureTypeGuid SignatureType = 0x02
)

// RAM disk type GUIDs
var (
	RamDiskTypeVirtualDisk           = mustGuid("77ab535a-45fc-624b-5560-f7b281d1f96e")
	RamDiskTypeVirtualCd             = mustGuid("3d5abd30-4175-87ce-6d64-d2ade523c4bb")
	RamDiskTypePersistentVirtualDisk = mustGuid("5cea02c9-4d07-69d3-269f-4496fbe096f9")
	RamDiskTypePersistentVirtualCd   = mustGuid("08018188-42cd-bb48-100f-5387d53ded3d")
)

// HardDrive is a hard drive media device path node
type HardDrive struct {
	// Partition number starting from 1. Zero indicates the whole
	// device.
	PartitionNumber uint32
	// Starting LBA of the partition
	PartitionStart uint64
	// Size of the partition in blocks
	PartitionSize uint64
	// Signature bytes; interpretation depends on SignatureType
	PartitionSignature [16]byte
	PartitionFormat    PartitionFormat
	SignatureType      SignatureType
}

// NewHardDriveMbr builds a hard drive node for an MBR-partitioned disk
func NewHardDriveMbr(
	partitionNumber uint32,
	partitionStart uint64,
	partitionSize uint64,
	diskSignature uint32,
) *HardDrive {
	v := &HardDrive{
		PartitionNumber: partitionNumber,
		PartitionStart:  partitionStart,
		PartitionSize:   partitionSize,
		PartitionFormat: PartitionFormatMbr,
		SignatureType:   SignatureTypeMbr,
	}
	putU32(v.PartitionSignature[:], 0, diskSignature)
	return v
}

// NewHardDriveGpt builds a hard drive node for a GPT-partitioned disk
func NewHardDriveGpt(
	partitionNumber uint32,
	partitionStart uint64,
	partitionSize uint64,
	partitionGuid Guid,
) *HardDrive {
	v := &HardDrive{
		PartitionNumber: partitionNumber,
		PartitionStart:  partitionStart,
		PartitionSize:   partitionSize,
		PartitionFormat: PartitionFormatGpt,
		SignatureType:   SignatureTypeGuid,
	}
	copy(v.PartitionSignature[:], partitionGuid[:])
	return v
}

// SignatureGuid returns the partition signature as a GUID, or false if
// the signature type is not SignatureTypeGuid
func (v *HardDrive) SignatureGuid() (Guid, bool) {
	if v.SignatureType != SignatureTypeGuid {
		return Guid{}, false
	}
	var g Guid
	copy(g[:], v.PartitionSignature[:])
	return g, true
}

// SignatureMbr returns the partition signature as an MBR disk
// signature, or false if the signature type is not SignatureTypeMbr
func (v *HardDrive) SignatureMbr() (uint32, bool) {
	if v.SignatureType != SignatureTypeMbr {
		return 0, false
	}
	return getU32(v.PartitionSignature[:], 0), true
}

func (v *HardDrive) FullType() FullType {
	return FullType{DeviceTypeMedia, SubTypeMediaHardDrive}
}

func (v *HardDrive) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *HardDrive) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, v.PartitionNumber)
	putU64(out, 8, v.PartitionStart)
	putU64(out, 16, v.PartitionSize)
	copy(out[24:40], v.PartitionSignature[:])
	out[40] = uint8(v.PartitionFormat)
	out[41] = uint8(v.SignatureType)
}

func decodeHardDrive(data []byte) *HardDrive {
	v := &HardDrive{
		PartitionNumber: getU32(data, 0),
		PartitionStart:  getU64(data, 4),
		PartitionSize:   getU64(data, 12),
		PartitionFormat: PartitionFormat(data[36]),
		SignatureType:   SignatureType(data[37]),
	}
	copy(v.PartitionSignature[:], data[20:36])
	return v
}

// CdRom is a CD-ROM media device path node
type CdRom struct {
	// Boot entry number from the boot catalog, where 0 is the default
	BootEntry uint32
	// Starting RBA of the partition
	PartitionStart uint64
	// Size of the partition in blocks
	PartitionSize uint64
}

func (v *CdRom) FullType() FullType {
	return FullType{DeviceTypeMedia, SubTypeMediaCdRom}
}

func (v *CdRom) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *CdRom) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, v.BootEntry)
	putU64(out, 8, v.PartitionStart)
	putU64(out, 16, v.PartitionSize)
}

func decodeCdRom(data []byte) *CdRom {
	return &CdRom{
		BootEntry:      getU32(data, 0),
		PartitionStart: getU64(data, 4),
		PartitionSize:  getU64(data, 12),
	}
}

// MediaVendor is a vendor-defined media device path node
type MediaVendor struct {
	// Vendor-assigned GUID that defines the data that follows
	VendorGuid Guid
	// Vendor-defined data
	VendorDefinedData []byte
}

func (v *MediaVendor) FullType() FullType {
	return FullType{DeviceTypeMedia, SubTypeMediaVendor}
}

func (v *MediaVendor) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.VendorDefinedData))
}

func (v *MediaVendor) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:20], v.VendorGuid[:])
	copy(out[20:], v.VendorDefinedData)
}

func decodeMediaVendor(data []byte) *MediaVendor {
	v := &MediaVendor{
		VendorDefinedData: data[16:],
	}
	copy(v.VendorGuid[:], data[:16])
	return v
}

// FilePath is a file path media device path node
type FilePath struct {
	// Null-terminated UCS-2 path
	PathName []uint16
}

// NewFilePath builds a file path node from a string, appending the
// null terminator
func NewFilePath(path string) *FilePath {
	return &FilePath{
		PathName: append(stringToUcs2(path), 0),
	}
}

// PathNameString decodes the path as a string, dropping the null
// terminator and replacing any invalid UCS-2 characters
func (v *FilePath) PathNameString() string {
	name := v.PathName
	if len(name) > 0 && name[len(name)-1] == 0 {
		name = name[:len(name)-1]
	}
	return ucs2ToString(name)
}

func (v *FilePath) FullType() FullType {
	return FullType{DeviceTypeMedia, SubTypeMediaFilePath}
}

func (v *FilePath) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 2*len(v.PathName))
}

func (v *FilePath) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	for i, c := range v.PathName {
		putU16(out, 4+2*i, c)
	}
}

func decodeFilePath(data []byte) *FilePath {
	return &FilePath{
		PathName: ucs2FromBytes(data),
	}
}

// MediaProtocol is a media protocol device path node
type MediaProtocol struct {
	// GUID of the protocol used on the media
	ProtocolGuid Guid
}

func (v *MediaProtocol) FullType() FullType {
	return FullType{DeviceTypeMedia, SubTypeMediaProtocol}
}

func (v *MediaProtocol) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *MediaProtocol) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:20], v.ProtocolGuid[:])
}

func decodeMediaProtocol(data []byte) *MediaProtocol {
	v := &MediaProtocol{}
	copy(v.ProtocolGuid[:], data[:16])
	return v
}

// PiwgFirmwareFile is a PIWG firmware file media device path node
type PiwgFirmwareFile struct {
	// Firmware file contents
	Data []byte
}

func (v *PiwgFirmwareFile) FullType() FullType {
	return FullType{DeviceTypeMedia, SubTypeMediaPiwgFirmwareFile}
}

func (v *PiwgFirmwareFile) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.Data))
}

func (v *PiwgFirmwareFile) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:], v.Data)
}

func decodePiwgFirmwareFile(data []byte) *PiwgFirmwareFile {
	return &PiwgFirmwareFile{
		Data: data,
	}
}

// PiwgFirmwareVolume is a PIWG firmware volume media device path node
type PiwgFirmwareVolume struct {
	// Firmware volume contents
	Data []byte
}

func (v *PiwgFirmwareVolume) FullType() FullType {
	return FullType{DeviceTypeMedia, SubTypeMediaPiwgFirmwareVolume}
}

func (v *PiwgFirmwareVolume) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), len(v.Data))
}

func (v *PiwgFirmwareVolume) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	copy(out[4:], v.Data)
}

func decodePiwgFirmwareVolume(data []byte) *PiwgFirmwareVolume {
	return &PiwgFirmwareVolume{
		Data: data,
	}
}

// RelativeOffsetRange is a relative offset range media device path node
type RelativeOffsetRange struct {
	// Offset of the first byte, relative to the parent device node
	StartingOffset uint64
	// Offset of the last byte, relative to the parent device node
	EndingOffset uint64
}

func (v *RelativeOffsetRange) FullType() FullType {
	return FullType{DeviceTypeMedia, SubTypeMediaRelativeOffsetRange}
}

func (v *RelativeOffsetRange) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *RelativeOffsetRange) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU32(out, 4, 0)
	putU64(out, 8, v.StartingOffset)
	putU64(out, 16, v.EndingOffset)
}

func decodeRelativeOffsetRange(data []byte) *RelativeOffsetRange {
	return &RelativeOffsetRange{
		StartingOffset: getU64(data, 4),
		EndingOffset:   getU64(data, 12),
	}
}

// RamDisk is a RAM disk media device path node
type RamDisk struct {
	// Starting memory address of the RAM disk
	StartingAddress uint64
	// Ending memory address of the RAM disk
	EndingAddress uint64
	// RAM disk type GUID, e.g. RamDiskTypeVirtualDisk
	DiskType     Guid
	DiskInstance uint16
}

func (v *RamDisk) FullType() FullType {
	return FullType{DeviceTypeMedia, SubTypeMediaRamDisk}
}

func (v *RamDisk) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *RamDisk) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
	putU64(out, 4, v.StartingAddress)
	putU64(out, 12, v.EndingAddress)
	copy(out[20:36], v.DiskType[:])
	putU16(out, 36, v.DiskInstance)
}

func decodeRamDisk(data []byte) *RamDisk {
	v := &RamDisk{
		StartingAddress: getU64(data, 0),
		EndingAddress:   getU64(data, 8),
		DiskInstance:    getU16(data, 32),
	}
	copy(v.DiskType[:], data[16:32])
	return v
}
