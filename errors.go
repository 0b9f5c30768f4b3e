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

package walletkit

import (
	"fmt"

	"github.com/pkg/errors"
)

// APIError is the error returned by the services in this module to its users.
type APIError struct {
	Type string // The error should be one of the known errors.
	Info string // Info field contains additional information about the error.
}

func (e APIError) Error() string {
	if e.Info == "" {
		return e.Type
	}
	return fmt.Sprintf("%s. Info: %s", e.Type, e.Info)
}

// NewAPIError returns an APIError of the given type, with the message of err as additional info.
// The error is annotated with a stack trace.
func NewAPIError(errType string, err error) error {
	if err == nil {
		return errors.WithStack(APIError{Type: errType})
	}
	return errors.WithStack(APIError{Type: errType, Info: err.Error()})
}

// Types of APIError. Each is also the message shown to the user.
var (
	// ErrInvalidMnemonic is returned when a mnemonic has unknown words or a bad checksum,
	// or when the requested entropy size is not supported.
	ErrInvalidMnemonic = "Invalid mnemonic phrase."
	// ErrInvalidPassword is returned when a keystore or encrypted mnemonic fails authentication.
	// A wrong password cannot be told apart from modified data.
	ErrInvalidPassword = "Password does not match or data is corrupted."
	// ErrInvalidEnvelope is returned when an encrypted mnemonic file is malformed or of an unsupported format.
	ErrInvalidEnvelope = "Invalid or unsupported encrypted mnemonic file."
	// ErrInvalidKeystore is returned when a keystore file is not valid web3 secret storage.
	ErrInvalidKeystore = "Invalid or unsupported keystore file."
	// ErrInvalidAmount is returned when an amount cannot be converted to a whole number of wei.
	ErrInvalidAmount = "Invalid amount string."
	// ErrInvalidConfig is returned when the configuration or a file name given by the user is invalid.
	ErrInvalidConfig = "Invalid configuration detected."
	// ErrUnknownUnit is returned for currency units other than ETH, GWEI and WEI.
	ErrUnknownUnit = "Unit not supported."
	// ErrUnknownNetwork is returned for networks not served by the provider.
	ErrUnknownNetwork = "Network not supported by the provider."

	// ErrKeystoreWrite is returned when the keystore file cannot be written.
	ErrKeystoreWrite = "Error writing keystore file, it may already exist for this account."
	// ErrFileAccess is returned when a file cannot be read, created or written.
	ErrFileAccess = "Error reading or writing file."

	// ErrInternal is returned for unexpected failures.
	ErrInternal = "Internal Error"
)
