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

// Package walletkit defines domain types and services for the walletkit library.
package walletkit

import (
	"math/big"
)

// Wallet represents an externally owned account along with the material needed to restore it.
//
// Address, PrivateKey and PublicKey are hex strings with 0x prefix.
// Mnemonic and Path are set only for wallets derived from a mnemonic.
type Wallet struct {
	Address    string
	PrivateKey string
	PublicKey  string

	Mnemonic string
	Path     string
}

// WalletBackend wraps the methods for creating, deriving and storing wallets
// that are specific to a blockchain platform.
type WalletBackend interface {
	ParseAddr(string) (string, error)

	NewRandomWallet() (Wallet, error)

	// NewMnemonic generates a BIP-39 mnemonic from the given number of bits of entropy.
	NewMnemonic(bits int) (string, error)
	ValidateMnemonic(mnemonic string) bool
	// WalletFromMnemonic derives the wallet at the given derivation path.
	// Default path is used if path is an empty string.
	WalletFromMnemonic(mnemonic, path string) (Wallet, error)
	DeriveWallets(mnemonic string, n int) ([]Wallet, error)

	// EncryptKeystore stores the key of the wallet as an encrypted keystore file
	// in the given directory and returns the path of the file.
	EncryptKeystore(dir string, w Wallet, password string) (string, error)
	DecryptKeystore(file, password string) (Wallet, error)
}

// Currency represents a parser that can convert between string representation of a currency unit and
// its equivalent value in base unit represented as a big integer.
type Currency interface {
	Parse(string) (*big.Int, error)
	Print(*big.Int) string
}

// Config represents the configuration parameters for walletkit.
type Config struct {
	LogLevel string
	LogFile  string

	KeystoreDir string // Directory for keystore files and encrypted mnemonics.
	Network     string // Default network used for provider construction.

	Provider ProviderConfig
	Scrypt   ScryptConfig
}

// ProviderConfig represents the parameters for connecting to a hosted node service.
type ProviderConfig struct {
	APIKey string
	Host   string
}

// ScryptConfig defines the scrypt parameters used for keystore encryption.
// Zero values mean standard parameters.
type ScryptConfig struct {
	N, P int
}
