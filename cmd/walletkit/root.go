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
	"github.com/spf13/viper"

	"github.com/direct-state-transfer/walletkit"
	"github.com/direct-state-transfer/walletkit/blockchain/ethereum"
	"github.com/direct-state-transfer/walletkit/config"
	"github.com/direct-state-transfer/walletkit/log"
	"github.com/direct-state-transfer/walletkit/wallet"
)

const (
	// flag names for the root command.
	configfileF  = "configfile"
	loglevelF    = "loglevel"
	logfileF     = "logfile"
	keystoredirF = "keystoredir"
	networkF     = "network"
)

// flags in the root command are binded with the viper instance to override values from config file.
var flagsToBind = []string{
	loglevelF,
	logfileF,
	keystoredirF,
	networkF,
}

// app holds the components initialized from the configuration before running a sub command.
type app struct {
	viper   *viper.Viper
	cfg     walletkit.Config
	logger  *log.Logger
	backend walletkit.WalletBackend
	service *wallet.Service
}

func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "walletkit",
		Short: "Create and manage ethereum wallets",
		Long: `
Create ethereum wallets from random keys or BIP-39 mnemonics, store keys in
keystore files and mnemonics in password encrypted files, convert between
currency units and print endpoints of a hosted node service.

Configuration can be specified in the config file, via environment variables
with prefix WALLETKIT_ or via flags. If more than one is given, flags take
precedence over environment variables, which take precedence over the file.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	rootCmd.PersistentFlags().String(configfileF, "", "config file")
	rootCmd.PersistentFlags().String(loglevelF, "", "Log level. Supported levels: debug, info, error")
	rootCmd.PersistentFlags().String(logfileF, "", "Log file path. Use empty string for stdout")
	rootCmd.PersistentFlags().String(keystoredirF, "", "Directory for keystore and encrypted mnemonic files")
	rootCmd.PersistentFlags().String(networkF, "", "Network used for provider endpoints")

	// Bind the configuration flags to viper instance used for to override the values defined in config file.
	for i := range flagsToBind {
		a.viper.BindPFlag(flagsToBind[i], rootCmd.PersistentFlags().Lookup(flagsToBind[i])) // nolint: errcheck
	}

	rootCmd.AddCommand(
		newWalletCmd(a),
		newMnemonicCmd(a),
		newKeystoreCmd(a),
		newUnitsCmd(),
		newProviderCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command, args []string) error {
	cfgFile, err := cmd.Flags().GetString(configfileF)
	if err != nil {
		return err
	}
	if a.cfg, err = config.Parse(a.viper, cfgFile); err != nil {
		return walletkit.NewAPIError(walletkit.ErrInvalidConfig, err)
	}
	// Logs are written only to a file, so that stdout has only the command output.
	if a.cfg.LogFile == "" {
		a.logger = log.NewDiscardLogger()
	} else if a.logger, err = log.NewLogger(a.cfg.LogLevel, a.cfg.LogFile); err != nil {
		return walletkit.NewAPIError(walletkit.ErrInvalidConfig, err)
	}
	a.backend = ethereum.NewWalletBackend(a.cfg.Scrypt)
	a.service, err = wallet.New(a.cfg, a.backend, a.logger)
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of walletkit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "walletkit version %s\n", version)
		},
	}
}
