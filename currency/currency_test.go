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

package currency_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/direct-state-transfer/walletkit/currency"
)

func Test_IsSupported(t *testing.T) {
	for _, unit := range []string{currency.ETH, currency.GWEI, currency.WEI, "eth", "Gwei", "wei"} {
		assert.True(t, currency.IsSupported(unit), unit)
		assert.NotNil(t, currency.NewParser(unit), unit)
	}
	assert.False(t, currency.IsSupported("BTC"))
}

func Test_Parse(t *testing.T) {
	tests := []struct {
		unit    string
		input   string
		want    string
		wantErr bool
	}{
		{currency.ETH, "1", "1000000000000000000", false},
		{currency.ETH, "1.5", "1500000000000000000", false},
		{currency.ETH, " 0.000000000000000001 ", "1", false},
		{currency.ETH, "1e-18", "1", false},
		{currency.ETH, "0", "0", false},
		{currency.ETH, "123456789.123456789123456789", "123456789123456789123456789", false},
		{currency.GWEI, "20", "20000000000", false},
		{currency.GWEI, "0.000000001", "1", false},
		{currency.WEI, "42", "42", false},

		{currency.ETH, "0.0000000000000000001", "", true},
		{currency.WEI, "1.5", "", true},
		{currency.ETH, "-1", "", true},
		{currency.ETH, "abc", "", true},
		{currency.ETH, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.unit+"_"+tt.input, func(t *testing.T) {
			got, err := currency.NewParser(tt.unit).Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func Test_Print(t *testing.T) {
	tests := []struct {
		unit  string
		input string
		want  string
	}{
		{currency.ETH, "1000000000000000000", "1.000000"},
		{currency.ETH, "1234567890000000000", "1.234568"},
		{currency.ETH, "1000000500000000000", "1.000000"},
		{currency.ETH, "1000001500000000000", "1.000002"},
		{currency.ETH, "0", "0.000000"},
		{currency.GWEI, "1", "0.000000001"},
		{currency.GWEI, "20000000000", "20.000000000"},
		{currency.WEI, "42", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.unit+"_"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.NewParser(tt.unit).Print(bigInt(t, tt.input)))
		})
	}
}

func Test_ToWei_FromWei(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		wei, err := currency.ToWei("2.5", "gwei")
		require.NoError(t, err)
		assert.Equal(t, "2500000000", wei.String())

		got, err := currency.FromWei(wei, "gwei")
		require.NoError(t, err)
		assert.Equal(t, "2.500000000", got)
	})
	t.Run("Err_UnknownUnit", func(t *testing.T) {
		wei, err := currency.ToWei("1", "BTC")
		assert.Error(t, err)
		assert.Nil(t, wei)

		got, err := currency.FromWei(big.NewInt(1), "BTC")
		assert.Error(t, err)
		assert.Empty(t, got)
	})
	t.Run("Err_NilAmount", func(t *testing.T) {
		got, err := currency.FromWei(nil, currency.ETH)
		assert.Error(t, err)
		assert.Empty(t, got)
	})
}

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return b
}
