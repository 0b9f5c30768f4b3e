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

// Package ethereum provides the wallet backend for the ethereum blockchain
// platform: random key generation, BIP-39 mnemonics, BIP-44 derivation and
// web3 secret storage (keystore) files. The actual implementation of the
// functionality is done in internal/ethereum, so that it can be shared with
// the ethereum test helper package "./ethereumtest".
//
// In addition to the intended functionality, this package is also structured
// to isolate the wallet related imports from "go-ethereum" and
// "go-ethereum-hdwallet". The exported methods use types in the root package
// of walletkit, so that other packages handle wallets without importing any
// of the ethereum libraries.
package ethereum
