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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/direct-state-transfer/walletkit"
	"github.com/direct-state-transfer/walletkit/blockchain/ethereum"
)

const (
	bitsF  = "bits"
	nameF  = "name"
	inF    = "in"
	pathF  = "path"
	countF = "count"

	defaultBits = 128
)

func newMnemonicCmd(a *app) *cobra.Command {
	mnemonicCmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate, derive and encrypt BIP-39 mnemonics",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new mnemonic",
		Long: `
Generate a new mnemonic. With --save NAME, the mnemonic is stored encrypted
as NAME.mnemonic.json in the keystore dir, the key of the first account is
stored in a keystore file and only the address is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, _ := cmd.Flags().GetInt(bitsF)
			name, _ := cmd.Flags().GetString(saveF)
			if name == "" {
				mnemonic, err := a.backend.NewMnemonic(bits)
				if err != nil {
					return walletkit.NewAPIError(walletkit.ErrInvalidMnemonic, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
				return nil
			}

			password, err := getPassword(cmd.ErrOrStderr(), "Password for mnemonic and keystore: ", true)
			if err != nil {
				return err
			}
			created, err := a.service.CreateFromMnemonic(name, bits, password)
			if err != nil {
				return err
			}
			printWallet(cmd.OutOrStdout(), created.Wallet, false)
			fmt.Fprintf(cmd.OutOrStdout(), "Keystore:    %s\n", created.KeystoreFile)
			fmt.Fprintf(cmd.OutOrStdout(), "Mnemonic:    %s\n", created.MnemonicFile)
			return nil
		},
	}
	newCmd.Flags().Int(bitsF, defaultBits, "Bits of entropy: 128 (12 words) to 256 (24 words), in steps of 32")
	newCmd.Flags().String(saveF, "", "Store the mnemonic encrypted under this name")

	deriveCmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive wallets from a mnemonic",
		Long: `
Derive wallets from a mnemonic read from stdin, or from an encrypted mnemonic
file given with --in. With --path, the wallet at that path is derived.
Otherwise, --count wallets along the default path are derived.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := a.readMnemonic(cmd)
			if err != nil {
				return err
			}
			path, _ := cmd.Flags().GetString(pathF)
			count, _ := cmd.Flags().GetInt(countF)

			var wallets []walletkit.Wallet
			if path != "" {
				w, err := a.backend.WalletFromMnemonic(mnemonic, path)
				if err != nil {
					return walletkit.NewAPIError(walletkit.ErrInvalidMnemonic, err)
				}
				wallets = append(wallets, w)
			} else if wallets, err = a.backend.DeriveWallets(mnemonic, count); err != nil {
				return walletkit.NewAPIError(walletkit.ErrInvalidMnemonic, err)
			}
			for i := range wallets {
				printWallet(cmd.OutOrStdout(), wallets[i], true)
			}
			return nil
		},
	}
	deriveCmd.Flags().String(inF, "", "Encrypted mnemonic file")
	deriveCmd.Flags().String(pathF, "", "Derivation path, for example "+ethereum.DefaultHDPath)
	deriveCmd.Flags().Int(countF, 1, "Number of wallets to derive along the default path")

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a mnemonic read from stdin",
		Long: `
Encrypt a mnemonic read from stdin with a password and store it as
NAME.mnemonic.json in the keystore dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(nameF)
			mnemonic, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			password, err := getPassword(cmd.ErrOrStderr(), "Password for mnemonic: ", true)
			if err != nil {
				return err
			}
			file, err := a.service.SaveMnemonic(name, mnemonic, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), greenf("Encrypted mnemonic stored in %s", file))
			return nil
		},
	}
	encryptCmd.Flags().String(nameF, "", "Name of the encrypted mnemonic file")
	_ = encryptCmd.MarkFlagRequired(nameF)

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt an encrypted mnemonic file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := a.readMnemonic(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
			return nil
		},
	}
	decryptCmd.Flags().String(inF, "", "Encrypted mnemonic file")
	_ = decryptCmd.MarkFlagRequired(inF)

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Store a mnemonic read from stdin and the key derived from it",
		Long: `
Read a mnemonic from stdin, store it encrypted as NAME.mnemonic.json in the
keystore dir and store the key at --path (default ` + ethereum.DefaultHDPath + `)
in a keystore file. Both use the same password.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(nameF)
			path, _ := cmd.Flags().GetString(pathF)
			mnemonic, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			password, err := getPassword(cmd.ErrOrStderr(), "Password for mnemonic and keystore: ", true)
			if err != nil {
				return err
			}
			created, err := a.service.ImportMnemonic(name, mnemonic, path, password)
			if err != nil {
				return err
			}
			printWallet(cmd.OutOrStdout(), created.Wallet, false)
			fmt.Fprintf(cmd.OutOrStdout(), "Keystore:    %s\n", created.KeystoreFile)
			fmt.Fprintf(cmd.OutOrStdout(), "Mnemonic:    %s\n", created.MnemonicFile)
			return nil
		},
	}
	importCmd.Flags().String(nameF, "", "Name of the encrypted mnemonic file")
	importCmd.Flags().String(pathF, "", "Derivation path of the key to store")
	_ = importCmd.MarkFlagRequired(nameF)

	mnemonicCmd.AddCommand(newCmd, deriveCmd, encryptCmd, decryptCmd, importCmd)
	return mnemonicCmd
}

// readMnemonic decrypts the mnemonic from the file given in the "in" flag, or reads it from stdin.
func (a *app) readMnemonic(cmd *cobra.Command) (string, error) {
	in, _ := cmd.Flags().GetString(inF)
	if in == "" {
		return readLine(cmd.InOrStdin())
	}
	password, err := getPassword(cmd.ErrOrStderr(), "Password for mnemonic: ", false)
	if err != nil {
		return "", err
	}
	return a.service.LoadMnemonic(in, password)
}
