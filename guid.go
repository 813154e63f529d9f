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
	"github.com/google/uuid"
)

// Guid is an EFI GUID in wire order. Unlike RFC 4122 UUIDs, which are
// big-endian throughout, the first three fields of an EFI GUID are stored
// little-endian and the remaining eight bytes are stored as-is.
type Guid [16]byte

// NewGuidFromString parses the usual xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
// text form into wire order
func NewGuidFromString(s string) (Guid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Guid{}, err
	}
	return NewGuidFromUuid(u), nil
}

// NewGuidFromUuid converts a RFC 4122 UUID to an EFI GUID in wire order
func NewGuidFromUuid(u uuid.UUID) Guid {
	var g Guid
	copy(g[:], u[:])
	swapGuidFields(g[:])
	return g
}

// Uuid returns the RFC 4122 form of the GUID
func (g Guid) Uuid() uuid.UUID {
	var u uuid.UUID
	copy(u[:], g[:])
	swapGuidFields(u[:])
	return u
}

func (g Guid) String() string {
	return g.Uuid().String()
}

// Reverses the byte order of the three leading fields (u32, u16, u16) in
// place. The transform is its own inverse
func swapGuidFields(b []byte) {
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]
}

func mustGuid(s string) Guid {
	g, err := NewGuidFromString(s)
	if err != nil {
		panic(err)
	}
	return g
}
