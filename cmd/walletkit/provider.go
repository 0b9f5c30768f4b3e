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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/direct-state-transfer/walletkit"
	"github.com/direct-state-transfer/walletkit/provider"
)

const wsF = "ws"

func newProviderCmd(a *app) *cobra.Command {
	providerCmd := &cobra.Command{
		Use:   "provider",
		Short: "Endpoints of the hosted node service",
	}

	urlCmd := &cobra.Command{
		Use:   "url",
		Short: "Print the endpoint for the configured network",
		Long: `
Print the endpoint for the configured network. The api key is taken from
provider.apikey in the config file or WALLETKIT_PROVIDER_APIKEY.

Supported networks: ` + strings.Join(provider.Networks(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _ := cmd.Flags().GetBool(wsF)
			p, err := provider.New(a.cfg.Provider)
			if err != nil {
				return walletkit.NewAPIError(walletkit.ErrInvalidConfig, err)
			}
			url, err := p.HTTPURL(a.cfg.Network)
			if ws {
				url, err = p.WSURL(a.cfg.Network)
			}
			if errors.Is(err, provider.ErrUnknownNetwork) {
				return walletkit.NewAPIError(walletkit.ErrUnknownNetwork, err)
			}
			if err != nil {
				return walletkit.NewAPIError(walletkit.ErrInternal, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
	urlCmd.Flags().Bool(wsF, false, "Print the websocket endpoint")

	providerCmd.AddCommand(urlCmd)
	return providerCmd
}
