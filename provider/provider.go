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

// Package provider constructs endpoints and clients for the ethereum nodes of
// a hosted node service. The API key is passed explicitly in the
// configuration; nothing is read from the environment here.
package provider

import (
	"context"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/direct-state-transfer/walletkit"
)

// DefaultHost is the domain of the hosted node service used when none is configured.
const DefaultHost = "infura.io"

// Error type is used to define error constants for this package.
type Error string

// Error implements error interface.
func (e Error) Error() string {
	return string(e)
}

// Definition of error constants for this package.
const (
	ErrMissingAPIKey  Error = "api key is not configured"
	ErrUnknownNetwork Error = "unknown network"
)

// networks maps the supported network names to the sub domain of the service serving them.
var networks = map[string]string{
	"mainnet":          "mainnet",
	"sepolia":          "sepolia",
	"holesky":          "holesky",
	"goerli":           "goerli",
	"polygon-mainnet":  "polygon-mainnet",
	"arbitrum-mainnet": "arbitrum-mainnet",
	"optimism-mainnet": "optimism-mainnet",
}

// Networks returns the names of all supported networks in sorted order.
func Networks() []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Provider builds urls and clients for the nodes of a hosted node service.
type Provider struct {
	apiKey string
	host   string
}

// New returns a provider for the given configuration. DefaultHost is used if host is not set.
func New(cfg walletkit.ProviderConfig) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.WithStack(ErrMissingAPIKey)
	}
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	return &Provider{apiKey: cfg.APIKey, host: host}, nil
}

// HTTPURL returns the JSON-RPC over HTTPS endpoint for the network.
func (p *Provider) HTTPURL(network string) (string, error) {
	sub, ok := networks[network]
	if !ok {
		return "", errors.Wrap(ErrUnknownNetwork, network)
	}
	return fmt.Sprintf("https://%s.%s/v3/%s", sub, p.host, p.apiKey), nil
}

// WSURL returns the JSON-RPC over websocket endpoint for the network.
func (p *Provider) WSURL(network string) (string, error) {
	sub, ok := networks[network]
	if !ok {
		return "", errors.Wrap(ErrUnknownNetwork, network)
	}
	return fmt.Sprintf("wss://%s.%s/ws/v3/%s", sub, p.host, p.apiKey), nil
}

// DialNetwork connects to the node serving the network, over websocket if ws is true and over HTTPS otherwise.
func (p *Provider) DialNetwork(ctx context.Context, network string, ws bool) (*ethclient.Client, error) {
	url, err := p.HTTPURL(network)
	if ws {
		url, err = p.WSURL(network)
	}
	if err != nil {
		return nil, err
	}
	return Dial(ctx, url)
}

// Dial connects to the ethereum node at the given url. The scheme of the url (http, https, ws, wss or
// a path to an ipc file) determines the transport.
func Dial(ctx context.Context, url string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, url)
	return client, errors.Wrap(err, "connecting to ethereum node")
}
