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

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/direct-state-transfer/walletkit"
	"github.com/direct-state-transfer/walletkit/blockchain/ethereum/ethereumtest"
)

// setupEnv sets a temporary keystore dir, a password and weak scrypt parameters for the commands.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "walletkit-test-cmd-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	t.Setenv("WALLETKIT_KEYSTOREDIR", filepath.Join(dir, "keystore"))
	t.Setenv("WALLETKIT_SCRYPT_N", "2")
	t.Setenv("WALLETKIT_SCRYPT_P", "1")
	t.Setenv(PasswordEnvVar, "pwd")
	return filepath.Join(dir, "keystore")
}

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(ioutil.Discard)
	err := cmd.Execute()
	return stdout.String(), err
}

func requireAPIError(t *testing.T, err error, errType string) {
	t.Helper()
	require.Error(t, err)
	var apiErr walletkit.APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, errType, apiErr.Type)
}

// outputValue returns the value printed after the label, such as "Keystore:".
func outputValue(t *testing.T, out, label string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, label) {
			return strings.TrimSpace(strings.TrimPrefix(line, label))
		}
	}
	t.Fatalf("%s not found in output: %s", label, out)
	return ""
}

func Test_Version(t *testing.T) {
	setupEnv(t)
	out, err := runCmd(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "walletkit version dev\n", out)
}

func Test_Units(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"units", "to-wei", "1.5"}, "1500000000000000000\n"},
		{[]string{"units", "to-wei", "20", "--unit", "gwei"}, "20000000000\n"},
		{[]string{"units", "from-wei", "1500000000000000000"}, "1.500000\n"},
		{[]string{"units", "from-wei", "1", "--unit", "GWEI"}, "0.000000001\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], "_"), func(t *testing.T) {
			out, err := runCmd(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("unknown-unit", func(t *testing.T) {
		_, err := runCmd(t, "", "units", "to-wei", "1", "--unit", "btc")
		requireAPIError(t, err, walletkit.ErrUnknownUnit)
		_, err = runCmd(t, "", "units", "from-wei", "1", "--unit", "btc")
		requireAPIError(t, err, walletkit.ErrUnknownUnit)
	})
	t.Run("invalid-amount", func(t *testing.T) {
		for _, args := range [][]string{
			{"units", "to-wei", "--", "-1"},
			{"units", "to-wei", "0.1", "--unit", "wei"},
			{"units", "from-wei", "1.5"},
			{"units", "from-wei", "--", "-1"},
		} {
			_, err := runCmd(t, "", args...)
			requireAPIError(t, err, walletkit.ErrInvalidAmount)
		}
	})
	t.Run("needs-no-config", func(t *testing.T) {
		t.Setenv("WALLETKIT_LOGLEVEL", "invalid")
		_, err := runCmd(t, "", "units", "to-wei", "1")
		assert.NoError(t, err)
	})
}

func Test_InvalidConfig(t *testing.T) {
	setupEnv(t)
	_, err := runCmd(t, "", "wallet", "new", "--loglevel", "trace")
	requireAPIError(t, err, walletkit.ErrInvalidConfig)

	_, err = runCmd(t, "", "wallet", "new", "--configfile", "missing.yaml")
	requireAPIError(t, err, walletkit.ErrInvalidConfig)
}

func Test_Wallet_New(t *testing.T) {
	ksDir := setupEnv(t)

	t.Run("print", func(t *testing.T) {
		out, err := runCmd(t, "", "wallet", "new")
		require.NoError(t, err)
		assert.Len(t, outputValue(t, out, "Private key:"), 2+64)
		assert.NoDirExists(t, ksDir)
	})
	t.Run("save", func(t *testing.T) {
		out, err := runCmd(t, "", "wallet", "new", "--save")
		require.NoError(t, err)
		assert.NotContains(t, out, "Private key:")
		addr := outputValue(t, out, "Address:")
		ksFile := outputValue(t, out, "Keystore:")
		assert.Equal(t, ksDir, filepath.Dir(ksFile))

		out, err = runCmd(t, "", "keystore", "load", ksFile)
		require.NoError(t, err)
		assert.Equal(t, addr, outputValue(t, out, "Address:"))
		assert.NotContains(t, out, "Private key:")

		t.Setenv(PasswordEnvVar, "wrong")
		_, err = runCmd(t, "", "keystore", "load", ksFile)
		requireAPIError(t, err, walletkit.ErrInvalidPassword)
	})
}

func Test_Mnemonic_New(t *testing.T) {
	ksDir := setupEnv(t)

	t.Run("print", func(t *testing.T) {
		out, err := runCmd(t, "", "mnemonic", "new", "--bits", "256")
		require.NoError(t, err)
		assert.Len(t, strings.Fields(out), 24)
	})
	t.Run("invalid-bits", func(t *testing.T) {
		_, err := runCmd(t, "", "mnemonic", "new", "--bits", "100")
		requireAPIError(t, err, walletkit.ErrInvalidMnemonic)
	})
	t.Run("save", func(t *testing.T) {
		out, err := runCmd(t, "", "mnemonic", "new", "--save", "main")
		require.NoError(t, err)
		addr := outputValue(t, out, "Address:")
		mnemonicFile := outputValue(t, out, "Mnemonic:")
		assert.Equal(t, filepath.Join(ksDir, "main.mnemonic.json"), mnemonicFile)

		out, err = runCmd(t, "", "mnemonic", "derive", "--in", mnemonicFile)
		require.NoError(t, err)
		assert.Equal(t, addr, outputValue(t, out, "Address:"))
	})
}

func Test_Mnemonic_Derive(t *testing.T) {
	setupEnv(t)

	t.Run("count", func(t *testing.T) {
		out, err := runCmd(t, ethereumtest.TestMnemonic+"\n", "mnemonic", "derive", "--count", "2")
		require.NoError(t, err)
		assert.Contains(t, out, ethereumtest.TestAddr0)
		assert.Contains(t, out, ethereumtest.TestKey0)
		assert.Contains(t, out, ethereumtest.TestAddr1)
	})
	t.Run("path", func(t *testing.T) {
		out, err := runCmd(t, ethereumtest.TestMnemonic, "mnemonic", "derive", "--path", "m/44'/60'/0'/0/1")
		require.NoError(t, err)
		assert.Equal(t, ethereumtest.TestAddr1, outputValue(t, out, "Address:"))
		assert.NotContains(t, out, ethereumtest.TestAddr0)
	})
	t.Run("invalid-mnemonic", func(t *testing.T) {
		_, err := runCmd(t, "not a mnemonic", "mnemonic", "derive")
		requireAPIError(t, err, walletkit.ErrInvalidMnemonic)
	})
	t.Run("no-input", func(t *testing.T) {
		_, err := runCmd(t, "", "mnemonic", "derive")
		assert.Error(t, err)
	})
}

func Test_Mnemonic_EncryptDecrypt(t *testing.T) {
	ksDir := setupEnv(t)

	out, err := runCmd(t, ethereumtest.TestMnemonic, "mnemonic", "encrypt", "--name", "test")
	require.NoError(t, err)
	file := filepath.Join(ksDir, "test.mnemonic.json")
	assert.Contains(t, out, file)

	out, err = runCmd(t, "", "mnemonic", "decrypt", "--in", file)
	require.NoError(t, err)
	assert.Equal(t, ethereumtest.TestMnemonic+"\n", out)

	t.Run("wrong-password", func(t *testing.T) {
		t.Setenv(PasswordEnvVar, "wrong")
		out, err := runCmd(t, "", "mnemonic", "decrypt", "--in", file)
		requireAPIError(t, err, walletkit.ErrInvalidPassword)
		assert.Empty(t, out)
	})
	t.Run("missing-name", func(t *testing.T) {
		_, err := runCmd(t, ethereumtest.TestMnemonic, "mnemonic", "encrypt")
		assert.Error(t, err)
	})
	t.Run("name-in-use", func(t *testing.T) {
		_, err := runCmd(t, ethereumtest.TestMnemonic, "mnemonic", "encrypt", "--name", "test")
		requireAPIError(t, err, walletkit.ErrFileAccess)
	})
}

func Test_Mnemonic_Import(t *testing.T) {
	setupEnv(t)

	out, err := runCmd(t, ethereumtest.TestMnemonic, "mnemonic", "import", "--name", "imported",
		"--path", "m/44'/60'/0'/0/1")
	require.NoError(t, err)
	assert.Equal(t, ethereumtest.TestAddr1, outputValue(t, out, "Address:"))

	out, err = runCmd(t, "", "keystore", "load", outputValue(t, out, "Keystore:"), "--show-key")
	require.NoError(t, err)
	assert.Equal(t, ethereumtest.TestKey1, outputValue(t, out, "Private key:"))
}

func Test_Provider_URL(t *testing.T) {
	setupEnv(t)

	t.Run("missing-api-key", func(t *testing.T) {
		_, err := runCmd(t, "", "provider", "url")
		requireAPIError(t, err, walletkit.ErrInvalidConfig)
	})

	t.Setenv("WALLETKIT_PROVIDER_APIKEY", "0123456789abcdef")
	t.Run("http", func(t *testing.T) {
		out, err := runCmd(t, "", "provider", "url")
		require.NoError(t, err)
		assert.Equal(t, "https://mainnet.infura.io/v3/0123456789abcdef\n", out)
	})
	t.Run("ws", func(t *testing.T) {
		out, err := runCmd(t, "", "provider", "url", "--ws", "--network", "sepolia")
		require.NoError(t, err)
		assert.Equal(t, "wss://sepolia.infura.io/ws/v3/0123456789abcdef\n", out)
	})
	t.Run("unknown-network", func(t *testing.T) {
		_, err := runCmd(t, "", "provider", "url", "--network", "ropsten")
		requireAPIError(t, err, walletkit.ErrInvalidConfig)
	})
}
