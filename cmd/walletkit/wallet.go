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
	"io"

	"github.com/spf13/cobra"

	"github.com/direct-state-transfer/walletkit"
)

const (
	saveF    = "save"
	showKeyF = "show-key"
)

func newWalletCmd(a *app) *cobra.Command {
	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Create random wallets",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create a wallet from a random private key",
		Long: `
Create a wallet from a random private key. With --save, the key is stored
encrypted in a keystore file and only the address is printed. Otherwise,
the private key is printed and it is not stored anywhere.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			save, _ := cmd.Flags().GetBool(saveF)
			if !save {
				w, err := a.backend.NewRandomWallet()
				if err != nil {
					return walletkit.NewAPIError(walletkit.ErrInternal, err)
				}
				printWallet(cmd.OutOrStdout(), w, true)
				return nil
			}

			password, err := getPassword(cmd.ErrOrStderr(), "Password for keystore: ", true)
			if err != nil {
				return err
			}
			created, err := a.service.CreateRandom(password)
			if err != nil {
				return err
			}
			printWallet(cmd.OutOrStdout(), created.Wallet, false)
			fmt.Fprintf(cmd.OutOrStdout(), "Keystore:    %s\n", created.KeystoreFile)
			return nil
		},
	}
	newCmd.Flags().Bool(saveF, false, "Store the key in an encrypted keystore file")

	walletCmd.AddCommand(newCmd)
	return walletCmd
}

func printWallet(out io.Writer, w walletkit.Wallet, showKey bool) {
	fmt.Fprintf(out, "Address:     %s\n", w.Address)
	if w.Path != "" {
		fmt.Fprintf(out, "Path:        %s\n", w.Path)
	}
	if showKey {
		fmt.Fprintf(out, "Private key: %s\n", w.PrivateKey)
		fmt.Fprintln(out, yellowf("Anyone with the private key can spend the funds. Store it securely."))
	}
}
