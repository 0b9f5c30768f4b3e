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
	"crypto/ecdsa"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"

	"github.com/direct-state-transfer/walletkit"
)

// DefaultHDPath is the BIP-44 derivation path of the first ethereum account.
// DeriveWallets uses the same path with increasing address index.
const (
	DefaultHDPath  = "m/44'/60'/0'/0/0"
	defaultHDRoot  = "m/44'/60'/0'/0/"
	minEntropyBits = 128
	maxEntropyBits = 256
)

// Definition of error constants for this package.
const (
	ErrInvalidMnemonic Error = "invalid mnemonic"
	ErrInvalidKey      Error = "invalid private key"
	ErrAddressMismatch Error = "address does not match private key"
)

// Error type is used to define error constants for this package.
type Error string

// Error implements error interface.
func (e Error) Error() string {
	return string(e)
}

// WalletBackend provides ethereum specific wallet backend functionality.
type WalletBackend struct {
	EncParams ScryptParams
}

// ScryptParams defines the parameters for scrypt algorithm. It determines the security level of algorithm
// used for encrypting the keys for storage on disk.
//
// Weak values should be used only for testing purposes (enables faster unlocking). Use standard values otherwise.
type ScryptParams struct {
	N, P int
}

// ParseAddr parses the ethereum address from the given string and returns it in checksummed form.
func (wb *WalletBackend) ParseAddr(str string) (string, error) {
	if !common.IsHexAddress(str) {
		return "", errors.Errorf("invalid ethereum address - %s", str)
	}
	return common.HexToAddress(str).Hex(), nil
}

// NewRandomWallet generates a new private key using a cryptographically secure random source.
func (wb *WalletBackend) NewRandomWallet() (walletkit.Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return walletkit.Wallet{}, errors.Wrap(err, "generating key")
	}
	return walletFromKey(key), nil
}

// NewMnemonic generates a mnemonic from the given number of bits of entropy.
// Bits should be a multiple of 32 in the range [128, 256]: 128 bits gives 12 words, 256 bits gives 24 words.
func (wb *WalletBackend) NewMnemonic(bits int) (string, error) {
	if bits < minEntropyBits || bits > maxEntropyBits || bits%32 != 0 {
		return "", errors.Errorf("entropy bits must be a multiple of 32 in [%d, %d], got %d",
			minEntropyBits, maxEntropyBits, bits)
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", errors.Wrap(err, "generating entropy")
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	return mnemonic, errors.Wrap(err, "generating mnemonic")
}

// ValidateMnemonic checks the word list and checksum of the mnemonic.
// Surrounding and repeated whitespace between words is ignored.
func (wb *WalletBackend) ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(normalizeMnemonic(mnemonic))
}

// WalletFromMnemonic derives the wallet at the given path from the mnemonic. DefaultHDPath is used if path
// is empty.
func (wb *WalletBackend) WalletFromMnemonic(mnemonic, path string) (walletkit.Wallet, error) {
	if path == "" {
		path = DefaultHDPath
	}
	hdw, err := newHDWallet(mnemonic)
	if err != nil {
		return walletkit.Wallet{}, err
	}
	return deriveWallet(hdw, mnemonic, path)
}

// DeriveWallets derives the first n wallets along the default path.
func (wb *WalletBackend) DeriveWallets(mnemonic string, n int) ([]walletkit.Wallet, error) {
	if n < 1 {
		return nil, errors.Errorf("number of wallets must be positive, got %d", n)
	}
	hdw, err := newHDWallet(mnemonic)
	if err != nil {
		return nil, err
	}
	wallets := make([]walletkit.Wallet, n)
	for i := 0; i < n; i++ {
		if wallets[i], err = deriveWallet(hdw, mnemonic, fmt.Sprintf("%s%d", defaultHDRoot, i)); err != nil {
			return nil, err
		}
	}
	return wallets, nil
}

// EncryptKeystore encrypts the private key of the wallet in web3 secret storage format and writes it to a
// new file in the keystore directory. The directory must exist.
func (wb *WalletBackend) EncryptKeystore(dir string, w walletkit.Wallet, password string) (string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", errors.New("dir does not exists - " + dir)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(w.PrivateKey, "0x"))
	if err != nil {
		return "", errors.Wrap(ErrInvalidKey, err.Error())
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)
	if w.Address != "" && !strings.EqualFold(w.Address, addr.Hex()) {
		return "", errors.Wrapf(ErrAddressMismatch, "want %s, derived %s", w.Address, addr.Hex())
	}

	ks := keystore.NewKeyStore(dir, wb.EncParams.N, wb.EncParams.P)
	acc, err := ks.ImportECDSA(key, password)
	if err != nil {
		return "", errors.Wrap(err, "importing key to keystore")
	}
	return acc.URL.Path, nil
}

// DecryptKeystore reads the keystore file and decrypts the key with the given password.
func (wb *WalletBackend) DecryptKeystore(file, password string) (walletkit.Wallet, error) {
	keyJSON, err := ioutil.ReadFile(filepath.Clean(file))
	if err != nil {
		return walletkit.Wallet{}, errors.WithStack(err)
	}
	key, err := keystore.DecryptKey(keyJSON, password)
	if err != nil {
		return walletkit.Wallet{}, errors.Wrap(err, "decrypting keystore")
	}
	return walletFromKey(key.PrivateKey), nil
}

func newHDWallet(mnemonic string) (*hdwallet.Wallet, error) {
	mnemonic = normalizeMnemonic(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.WithStack(ErrInvalidMnemonic)
	}
	hdw, err := hdwallet.NewFromMnemonic(mnemonic)
	return hdw, errors.Wrap(err, "initializing hd wallet")
}

func deriveWallet(hdw *hdwallet.Wallet, mnemonic, path string) (walletkit.Wallet, error) {
	dp, err := hdwallet.ParseDerivationPath(path)
	if err != nil {
		return walletkit.Wallet{}, errors.Wrapf(err, "parsing derivation path %s", path)
	}
	acc, err := hdw.Derive(dp, false)
	if err != nil {
		return walletkit.Wallet{}, errors.Wrapf(err, "deriving account at %s", path)
	}
	key, err := hdw.PrivateKey(acc)
	if err != nil {
		return walletkit.Wallet{}, errors.Wrap(err, "retrieving private key")
	}
	w := walletFromKey(key)
	w.Mnemonic = normalizeMnemonic(mnemonic)
	w.Path = path
	return w, nil
}

func walletFromKey(key *ecdsa.PrivateKey) walletkit.Wallet {
	return walletkit.Wallet{
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: hexutil.Encode(crypto.FromECDSA(key)),
		PublicKey:  hexutil.Encode(crypto.FromECDSAPub(&key.PublicKey)),
	}
}

func normalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}
