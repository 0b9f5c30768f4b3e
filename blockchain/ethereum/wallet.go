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

package ethereum

import (
	"github.com/ethereum/go-ethereum/accounts/keystore"

	"github.com/direct-state-transfer/walletkit"
	internal "github.com/direct-state-transfer/walletkit/blockchain/ethereum/internal/ethereum"
)

// Standard encryption parameters used for creating keystore files. Using these parameters will
// cause the decryption to use 256MB of RAM and takes approx 1s on a modern processor.
const (
	standardScryptN = keystore.StandardScryptN
	standardScryptP = keystore.StandardScryptP
)

// DefaultHDPath is the derivation path used when none is specified.
const DefaultHDPath = internal.DefaultHDPath

// NewWalletBackend initializes an ethereum specific wallet backend. Standard scrypt parameters are used
// for the fields of cfg that are zero.
func NewWalletBackend(cfg walletkit.ScryptConfig) walletkit.WalletBackend {
	params := internal.ScryptParams{N: standardScryptN, P: standardScryptP}
	if cfg.N != 0 {
		params.N = cfg.N
	}
	if cfg.P != 0 {
		params.P = cfg.P
	}
	return &internal.WalletBackend{EncParams: params}
}
