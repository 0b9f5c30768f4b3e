// Copyright (c) 2020 - for information on the respective copyright owner
// see the NOTICE file and/or the repository at
// https://github.com/direct-state-transfer/walletkit
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

package envelope

// Error type is used to define error constants for this package.
type Error string

// Error implements error interface.
func (e Error) Error() string {
	return string(e)
}

// Definition of error constants for this package.
//
// Errors returned by Encrypt and Decrypt wrap one of these kinds and can be
// matched with errors.Is. ErrDecryptionFailed is returned for a wrong
// password and for a tampered envelope alike.
const (
	ErrMalformedEnvelope   Error = "malformed envelope"
	ErrUnsupportedEnvelope Error = "unsupported envelope"
	ErrDecryptionFailed    Error = "decryption failed"
	ErrEmptySecret         Error = "secret is empty"
	ErrInvalidScryptParams Error = "invalid scrypt parameters"
)
