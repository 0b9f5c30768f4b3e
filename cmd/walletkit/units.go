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
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/direct-state-transfer/walletkit"
	"github.com/direct-state-transfer/walletkit/currency"
)

const unitF = "unit"

func newUnitsCmd() *cobra.Command {
	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "Convert amounts between ETH, GWEI and WEI",
		// Conversion needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}

	toWeiCmd := &cobra.Command{
		Use:   "to-wei AMOUNT",
		Short: "Convert an amount in the given unit to wei",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, _ := cmd.Flags().GetString(unitF)
			if !currency.IsSupported(unit) {
				return walletkit.NewAPIError(walletkit.ErrUnknownUnit, errors.New(unit))
			}
			wei, err := currency.ToWei(args[0], unit)
			if err != nil {
				return walletkit.NewAPIError(walletkit.ErrInvalidAmount, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), wei.String())
			return nil
		},
	}
	toWeiCmd.Flags().String(unitF, currency.ETH, "Unit of the amount")

	fromWeiCmd := &cobra.Command{
		Use:   "from-wei AMOUNT",
		Short: "Convert an amount in wei to the given unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, _ := cmd.Flags().GetString(unitF)
			if !currency.IsSupported(unit) {
				return walletkit.NewAPIError(walletkit.ErrUnknownUnit, errors.New(unit))
			}
			wei, ok := new(big.Int).SetString(args[0], 10)
			if !ok || wei.Sign() < 0 {
				return walletkit.NewAPIError(walletkit.ErrInvalidAmount, errors.New(args[0]))
			}
			out, err := currency.FromWei(wei, unit)
			if err != nil {
				return walletkit.NewAPIError(walletkit.ErrInvalidAmount, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	fromWeiCmd.Flags().String(unitF, currency.ETH, "Unit to convert to")

	unitsCmd.AddCommand(toWeiCmd, fromWeiCmd)
	return unitsCmd
}
