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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidWireOrder(t *testing.T) {
	// The first three fields are little-endian on the wire, the rest
	// is stored as-is
	g, err := NewGuidFromString("a1005a90-6591-4596-9bab-1c4249a6d4ff")
	require.NoError(t, err)
	assert.Equal(
		t,
		Guid{
			0x90, 0x5a, 0x00, 0xa1,
			0x91, 0x65,
			0x96, 0x45,
			0x9b, 0xab, 0x1c, 0x42, 0x49, 0xa6, 0xd4, 0xff,
		},
		g,
	)
	assert.Equal(t, "a1005a90-6591-4596-9bab-1c4249a6d4ff", g.String())
}

func TestGuidUuidRoundTrip(t *testing.T) {
	u := uuid.MustParse("15e39a00-1dd2-1000-8d7f-00a0c92408fc")
	g := NewGuidFromUuid(u)
	assert.Equal(t, u, g.Uuid())
}

func TestGuidInvalidString(t *testing.T) {
	_, err := NewGuidFromString("not-a-guid")
	require.Error(t, err)
}
