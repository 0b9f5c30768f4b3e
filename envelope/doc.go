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

// Package envelope implements password based encryption of secrets, such as
// BIP-39 mnemonics, into a versioned and self-describing JSON envelope.
//
// The key is derived from the password with scrypt and the secret is sealed
// with AES-256-GCM. Salt, IV and the KDF parameters are stored in the
// envelope, so the envelope and the password are all that is needed for
// decryption.
//
// Use Encrypt to create an envelope and Decrypt to open it. Errors can be
// classified using errors.Is with the Err* constants of this package.
package envelope
