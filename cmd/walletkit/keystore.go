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
	"github.com/spf13/cobra"
)

func newKeystoreCmd(a *app) *cobra.Command {
	keystoreCmd := &cobra.Command{
		Use:   "keystore",
		Short: "Read keystore files",
	}

	loadCmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Decrypt a keystore file and print the address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showKey, _ := cmd.Flags().GetBool(showKeyF)
			password, err := getPassword(cmd.ErrOrStderr(), "Password for keystore: ", false)
			if err != nil {
				return err
			}
			w, err := a.service.LoadKeystore(args[0], password)
			if err != nil {
				return err
			}
			printWallet(cmd.OutOrStdout(), w, showKey)
			return nil
		},
	}
	loadCmd.Flags().Bool(showKeyF, false, "Print the private key")

	keystoreCmd.AddCommand(loadCmd)
	return keystoreCmd
}
