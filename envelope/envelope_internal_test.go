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

package envelope

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// internal tests cover the random source used by encrypt.
// see external tests file for other tests.
func Test_encrypt_RandomSource(t *testing.T) {
	weak := ScryptParams{N: 2, R: 1, P: 1}

	t.Run("salt_and_iv_from_source", func(t *testing.T) {
		src := make([]byte, saltLen+ivLen)
		for i := range src {
			src[i] = byte(i)
		}
		enc, err := encrypt(bytes.NewReader(src), "secret", "pw", weak)
		require.NoError(t, err)

		e, err := Parse(enc)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(src[:saltLen]), e.KDFParams.Salt)
		assert.Equal(t, hex.EncodeToString(src[saltLen:]), e.IV)
	})

	t.Run("Err_ShortSource", func(t *testing.T) {
		for _, n := range []int{0, saltLen - 1, saltLen, saltLen + ivLen - 1} {
			enc, err := encrypt(bytes.NewReader(make([]byte, n)), "secret", "pw", weak)
			assert.Error(t, err, "source length %d", n)
			assert.Empty(t, enc)
		}
	})
}
