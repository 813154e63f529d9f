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

// Subtypes of DeviceTypeEnd
const (
	SubTypeEndInstance DeviceSubType = 0x01
	SubTypeEndEntire   DeviceSubType = 0xff
)

// EndInstance terminates one path instance when more instances follow
type EndInstance struct{}

func (v *EndInstance) FullType() FullType {
	return FullType{DeviceTypeEnd, SubTypeEndInstance}
}

func (v *EndInstance) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *EndInstance) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
}

// EndEntire terminates an entire device path
type EndEntire struct{}

func (v *EndEntire) FullType() FullType {
	return FullType{DeviceTypeEnd, SubTypeEndEntire}
}

func (v *EndEntire) SizeBytes() (uint16, error) {
	return nodeSize(v.FullType(), 0)
}

func (v *EndEntire) WriteBytes(out []byte) {
	writeHeader(out, v.FullType(), len(out))
}
