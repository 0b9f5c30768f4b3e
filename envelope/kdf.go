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

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// Limits on the scrypt parameters accepted from an envelope. A memory cost
// of 128*N*r bytes is allocated during key derivation, so these bound the
// resources a single Decrypt call can consume.
const (
	MaxScryptN = 1 << 20
	MaxScryptR = 32
	MaxScryptP = 16

	// MaxScryptMemory bounds the 128*N*r bytes allocated by one derivation.
	MaxScryptMemory = 256 << 20
	// MaxScryptWork bounds N*r*p, which is proportional to the time one derivation takes.
	MaxScryptWork = 1 << 24
)

// ScryptParams defines the cost parameters for the scrypt key derivation.
//
// Weak values should be used only for testing purposes. Use DefaultScryptParams otherwise.
type ScryptParams struct {
	N, R, P int
}

// DefaultScryptParams are the interactive-use parameters used by Encrypt.
var DefaultScryptParams = ScryptParams{N: 16384, R: 8, P: 1}

// Validate checks that the parameters are within the limits accepted by Decrypt.
func (sp ScryptParams) Validate() error {
	if sp.N <= 1 || sp.N&(sp.N-1) != 0 {
		return errors.Errorf("N must be a power of two greater than 1, got %d", sp.N)
	}
	if sp.N > MaxScryptN {
		return errors.Errorf("N must not exceed %d, got %d", MaxScryptN, sp.N)
	}
	if sp.R < 1 || sp.R > MaxScryptR {
		return errors.Errorf("r must be in [1, %d], got %d", MaxScryptR, sp.R)
	}
	if sp.P < 1 || sp.P > MaxScryptP {
		return errors.Errorf("p must be in [1, %d], got %d", MaxScryptP, sp.P)
	}
	if mem := 128 * int64(sp.N) * int64(sp.R); mem > MaxScryptMemory {
		return errors.Errorf("128*N*r must not exceed %d bytes, got %d", MaxScryptMemory, mem)
	}
	if work := int64(sp.N) * int64(sp.R) * int64(sp.P); work > MaxScryptWork {
		return errors.Errorf("N*r*p must not exceed %d, got %d", MaxScryptWork, work)
	}
	return nil
}

// deriveKey derives an AES-256 key from the password. Parameters must be validated by the caller.
func deriveKey(password string, salt []byte, sp ScryptParams) ([]byte, error) {
	return scrypt.Key([]byte(password), salt, sp.N, sp.R, sp.P, keyLen)
}

// zeroBytes overwrites a byte slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
