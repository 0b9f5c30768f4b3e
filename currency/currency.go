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

package currency

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/direct-state-transfer/walletkit"
)

const (
	// ETH represents the ether unit of ethereum currency.
	ETH = "ETH"
	// GWEI represents the gwei unit of ethereum currency, commonly used for gas prices.
	GWEI = "GWEI"
	// WEI represents the base unit of ethereum currency.
	WEI = "WEI"

	ethDecimals      = 18
	ethPlacesToRound = 6
	gweiDecimals     = 9
)

var currencies map[string]walletkit.Currency

func init() {
	currencies = make(map[string]walletkit.Currency)

	currencies[ETH] = parser{multiplier: decimal.New(1, ethDecimals), placesToRound: ethPlacesToRound}
	currencies[GWEI] = parser{multiplier: decimal.New(1, gweiDecimals), placesToRound: gweiDecimals}
	currencies[WEI] = parser{multiplier: decimal.New(1, 0), placesToRound: 0}
}

// IsSupported checks if there is parser registered for the unit
// represented by the given string. Unit names are case insensitive.
func IsSupported(unit string) bool {
	p, ok := currencies[strings.ToUpper(unit)]
	return ok && p != nil
}

// NewParser returns the parser for the unit. It returns nil if unsupported unit is used.
// so check if exists before usage.
func NewParser(unit string) walletkit.Currency {
	return currencies[strings.ToUpper(unit)]
}

// ToWei parses the amount given in the unit and returns it in wei.
func ToWei(amount, unit string) (*big.Int, error) {
	p := NewParser(unit)
	if p == nil {
		return nil, errors.Errorf("unsupported unit - %s", unit)
	}
	return p.Parse(amount)
}

// FromWei returns the string representation of the amount in wei converted to the unit.
func FromWei(wei *big.Int, unit string) (string, error) {
	p := NewParser(unit)
	if p == nil {
		return "", errors.Errorf("unsupported unit - %s", unit)
	}
	if wei == nil {
		return "", errors.New("amount is nil")
	}
	return p.Print(wei), nil
}

type parser struct {
	multiplier    decimal.Decimal
	placesToRound int32
}

// Parse parses the given decimal string in the unit of the parser, converts it to wei and returns a
// big.Int representation of the value.
// The amount should be non negative and should not be more precise than 1 wei, as that cannot be
// converted without loss of accuracy.
func (p parser) Parse(input string) (*big.Int, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return nil, errors.Wrap(err, "invalid decimal string")
	}
	if amount.IsNegative() {
		return nil, errors.New("amount should not be negative")
	}

	amountBaseUnit := amount.Mul(p.multiplier)
	if !amountBaseUnit.IsInteger() {
		return nil, errors.New("amount is too precise, smallest unit is 1 wei")
	}
	return amountBaseUnit.BigInt(), nil
}

// Print converts the input in wei to the unit of the parser and returns a string representation of it.
// The returned string is rounded off to a fixed number of decimal places for visual representation.
func (p parser) Print(input *big.Int) string {
	amount := decimal.NewFromBigInt(input, 0)
	return amount.Div(p.multiplier).StringFixedBank(p.placesToRound)
}
