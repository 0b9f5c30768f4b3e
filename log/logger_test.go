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

package log_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/direct-state-transfer/walletkit/log"
)

func Test_NewLogger(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "error"} {
			logger, err := log.NewLogger(level, "")
			require.NoError(t, err)
			assert.Equal(t, os.Stdout, logger.Out)
			assert.Equal(t, level, logger.GetLevel().String())
		}
	})

	t.Run("file", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "walletkit-test-log-*")
		require.NoError(t, err)
		t.Cleanup(func() { os.RemoveAll(dir) })
		logFile := filepath.Join(dir, "logs", "walletkit.log")

		logger, err := log.NewLogger("info", logFile)
		require.NoError(t, err)
		logger.WithFields(log.Fields{"address": "0x01"}).Info("created wallet")
		logger.Debug("not logged at info level")

		content, err := ioutil.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "created wallet")
		assert.Contains(t, string(content), "address=0x01")
		assert.Contains(t, string(content), "▶ ")
		assert.NotContains(t, string(content), "not logged")
	})

	t.Run("Err_UnsupportedLevel", func(t *testing.T) {
		for _, level := range []string{"", "warn", "trace", "invalid"} {
			logger, err := log.NewLogger(level, "")
			assert.Error(t, err, level)
			assert.Nil(t, logger)
		}
	})

	t.Run("Err_InvalidFile", func(t *testing.T) {
		f, err := ioutil.TempFile("", "walletkit-test-log-*")
		require.NoError(t, err)
		require.NoError(t, f.Close())
		t.Cleanup(func() { os.Remove(f.Name()) })

		// Parent of the log file is a regular file.
		logger, err := log.NewLogger("info", filepath.Join(f.Name(), "walletkit.log"))
		assert.Error(t, err)
		assert.Nil(t, logger)
	})
}

func Test_NewDiscardLogger(t *testing.T) {
	logger := log.NewDiscardLogger()
	require.NotNil(t, logger)
	logger.Info("discarded")
}
