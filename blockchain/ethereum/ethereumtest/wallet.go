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

package ethereumtest

import (
	"io/ioutil"
	"math/rand"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
	"github.com/stretchr/testify/require"

	"github.com/direct-state-transfer/walletkit"
	internal "github.com/direct-state-transfer/walletkit/blockchain/ethereum/internal/ethereum"
)

// Weak encryption parameters used for creating test keystores that can be decrypted faster.
const (
	WeakScryptN = 2
	WeakScryptP = 1
)

// Well known test mnemonic and the first two accounts derived from it along the default path.
const (
	TestMnemonic = "test test test test test test test test test test test junk"

	TestAddr0 = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	TestKey0  = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	TestAddr1 = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	TestKey1  = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
)

// NewTestWalletBackend initializes an ethereum specific wallet backend with weak encryption parameters.
func NewTestWalletBackend() walletkit.WalletBackend {
	return &internal.WalletBackend{EncParams: internal.ScryptParams{N: WeakScryptN, P: WeakScryptP}}
}

// WalletSetup holds n wallets derived from a random mnemonic and a keystore directory holding the
// keys of all the wallets. To enable faster unlocking of keys, it uses weak encryption parameters.
type WalletSetup struct {
	WalletBackend walletkit.WalletBackend
	Mnemonic      string
	KeystorePath  string
	Wallets       []walletkit.Wallet
	KeyFiles      []string
}

// NewWalletSetup initializes n wallets, whose mnemonic is generated from the given source of randomness.
// The keys are stored using an empty password. The keystore directory is removed when the test finishes.
func NewWalletSetup(t *testing.T, rng *rand.Rand, n int) *WalletSetup {
	wb := NewTestWalletBackend()

	entropy := make([]byte, 16)
	_, err := rng.Read(entropy)
	require.NoError(t, err)
	mnemonic, err := hdwallet.NewMnemonicFromEntropy(entropy)
	require.NoError(t, err)

	wallets, err := wb.DeriveWallets(mnemonic, n)
	require.NoError(t, err)

	ksPath, err := ioutil.TempDir("", "walletkit-test-keystore-*")
	if err != nil {
		t.Fatalf("Could not create temporary directory for keystore: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(ksPath) })

	files := make([]string, n)
	for i := range wallets {
		files[i], err = wb.EncryptKeystore(ksPath, wallets[i], "")
		require.NoError(t, err)
	}

	return &WalletSetup{
		WalletBackend: wb,
		Mnemonic:      mnemonic,
		KeystorePath:  ksPath,
		Wallets:       wallets,
		KeyFiles:      files,
	}
}

// NewRandomAddress generates a random wallet address. It generates the address only as a byte array.
// Hence it does not generate any public or private keys corresponding to the address.
// If you need an address with keys, use WalletBackend.NewRandomWallet method.
func NewRandomAddress(rnd *rand.Rand) string {
	var a common.Address
	rnd.Read(a[:])
	return a.Hex()
}
