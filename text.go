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

// DisplayOptions controls text conversion output
type DisplayOptions struct {
	// DisplayOnly requests the shorter non-parseable text form
	DisplayOnly bool
	// AllowShortcuts allows shortcut forms in the text representation
	AllowShortcuts bool
}

// TextConverter converts device paths to and from the human-readable
// text grammar of the UEFI specification. The grammar is large and
// typically provided by an external service such as the firmware's
// DevicePathToText and DevicePathFromText protocols, so this package
// defines only the contract. All implementations must preserve the
// invariant that converting a path to text and back yields an equal
// byte sequence when DisplayOnly is unset.
type TextConverter interface {
	NodeToText(node *Node, opts DisplayOptions) (string, error)
	PathToText(path *Path, opts DisplayOptions) (string, error)
	TextToNode(text string) (*Node, error)
	TextToPath(text string) (*Path, error)
}
