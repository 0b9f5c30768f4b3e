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

// Package wallet combines the wallet backend and the mnemonic envelope to
// create wallets and persist their secrets in the keystore directory.
package wallet

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/pkg/errors"

	"github.com/direct-state-transfer/walletkit"
	"github.com/direct-state-transfer/walletkit/config"
	"github.com/direct-state-transfer/walletkit/envelope"
	"github.com/direct-state-transfer/walletkit/log"
)

// MnemonicFileSuffix is appended to the name of encrypted mnemonic files.
const MnemonicFileSuffix = ".mnemonic.json"

const (
	dirPerm  = 0700
	filePerm = 0600
)

// Service creates wallets and stores encrypted keys and mnemonics in the configured keystore directory.
// It is safe for concurrent use.
type Service struct {
	wb             walletkit.WalletBackend
	log            *log.Logger
	keystoreDir    string
	envelopeParams envelope.ScryptParams
}

// Created holds a newly created wallet and the files its secrets were written to.
// MnemonicFile is empty for random wallets.
type Created struct {
	Wallet       walletkit.Wallet
	KeystoreFile string
	MnemonicFile string
}

// New initializes the service for the given config. If logger is nil, nothing is logged.
//
// The scrypt N and P parameters from the config are also used for encrypting mnemonics,
// along with the standard r parameter.
func New(cfg walletkit.Config, wb walletkit.WalletBackend, logger *log.Logger) (*Service, error) {
	if cfg.KeystoreDir == "" {
		return nil, walletkit.NewAPIError(walletkit.ErrInvalidConfig, errors.New("keystore dir is not set"))
	}
	if logger == nil {
		logger = log.NewDiscardLogger()
	}
	params := config.EnvelopeParams(cfg.Scrypt)
	if err := params.Validate(); err != nil {
		return nil, walletkit.NewAPIError(walletkit.ErrInvalidConfig, err)
	}
	return &Service{
		wb:             wb,
		log:            logger,
		keystoreDir:    filepath.Clean(cfg.KeystoreDir),
		envelopeParams: params,
	}, nil
}

// CreateRandom creates a wallet from a random key and stores the key encrypted with the password.
func (s *Service) CreateRandom(password string) (Created, error) {
	w, err := s.wb.NewRandomWallet()
	if err != nil {
		return Created{}, walletkit.NewAPIError(walletkit.ErrInternal, err)
	}
	ksFile, err := s.saveKeystore(w, password)
	if err != nil {
		return Created{}, err
	}
	s.log.WithFields(log.Fields{"address": w.Address, "file": ksFile}).Info("Created random wallet")
	return Created{Wallet: w, KeystoreFile: ksFile}, nil
}

// CreateFromMnemonic generates a new mnemonic from the given bits of entropy, derives the wallet at the default
// path and stores both the encrypted mnemonic (under the given name) and the encrypted key.
func (s *Service) CreateFromMnemonic(name string, bits int, password string) (Created, error) {
	mnemonic, err := s.wb.NewMnemonic(bits)
	if err != nil {
		return Created{}, walletkit.NewAPIError(walletkit.ErrInvalidMnemonic, err)
	}
	return s.ImportMnemonic(name, mnemonic, "", password)
}

// ImportMnemonic derives the wallet at the given path (default path if empty) from an existing mnemonic and
// stores both the encrypted mnemonic (under the given name) and the encrypted key.
func (s *Service) ImportMnemonic(name, mnemonic, path, password string) (Created, error) {
	w, err := s.wb.WalletFromMnemonic(mnemonic, path)
	if err != nil {
		return Created{}, walletkit.NewAPIError(walletkit.ErrInvalidMnemonic, err)
	}
	mnemonicFile, err := s.SaveMnemonic(name, w.Mnemonic, password)
	if err != nil {
		return Created{}, err
	}
	ksFile, err := s.saveKeystore(w, password)
	if err != nil {
		os.Remove(mnemonicFile) // nolint: errcheck
		return Created{}, err
	}
	s.log.WithFields(log.Fields{"address": w.Address, "path": w.Path, "file": ksFile}).Info("Created wallet from mnemonic")
	return Created{Wallet: w, KeystoreFile: ksFile, MnemonicFile: mnemonicFile}, nil
}

// SaveMnemonic encrypts the mnemonic with the password and writes the envelope to a new file
// "<name>.mnemonic.json" in the keystore directory. Existing files are not overwritten.
func (s *Service) SaveMnemonic(name, mnemonic, password string) (string, error) {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return "", walletkit.NewAPIError(walletkit.ErrInvalidConfig, errors.Errorf("invalid file name - %q", name))
	}
	if !s.wb.ValidateMnemonic(mnemonic) {
		return "", walletkit.NewAPIError(walletkit.ErrInvalidMnemonic, nil)
	}
	enc, err := envelope.EncryptWithParams(mnemonic, password, s.envelopeParams)
	if err != nil {
		return "", walletkit.NewAPIError(walletkit.ErrInternal, err)
	}

	if err = os.MkdirAll(s.keystoreDir, dirPerm); err != nil {
		return "", walletkit.NewAPIError(walletkit.ErrFileAccess, err)
	}
	file := filepath.Join(s.keystoreDir, name+MnemonicFileSuffix)
	if err = writeNewFile(file, []byte(enc)); err != nil {
		return "", err
	}
	s.log.WithField("file", file).Info("Saved encrypted mnemonic")
	return file, nil
}

// LoadMnemonic reads the encrypted mnemonic from the file and decrypts it with the password.
func (s *Service) LoadMnemonic(file, password string) (string, error) {
	enc, err := ioutil.ReadFile(filepath.Clean(file))
	if err != nil {
		return "", walletkit.NewAPIError(walletkit.ErrFileAccess, err)
	}
	mnemonic, err := envelope.Decrypt(string(enc), password)
	switch {
	case errors.Is(err, envelope.ErrDecryptionFailed):
		return "", walletkit.NewAPIError(walletkit.ErrInvalidPassword, nil)
	case err != nil:
		return "", walletkit.NewAPIError(walletkit.ErrInvalidEnvelope, err)
	}
	s.log.WithField("file", file).Debug("Loaded encrypted mnemonic")
	return mnemonic, nil
}

// LoadKeystore reads the keystore file and decrypts the key with the password.
func (s *Service) LoadKeystore(file, password string) (walletkit.Wallet, error) {
	w, err := s.wb.DecryptKeystore(file, password)
	switch {
	case errors.Is(err, keystore.ErrDecrypt):
		return walletkit.Wallet{}, walletkit.NewAPIError(walletkit.ErrInvalidPassword, nil)
	case errors.Is(err, os.ErrNotExist):
		return walletkit.Wallet{}, walletkit.NewAPIError(walletkit.ErrFileAccess, err)
	case err != nil:
		return walletkit.Wallet{}, walletkit.NewAPIError(walletkit.ErrInvalidKeystore, err)
	}
	s.log.WithFields(log.Fields{"address": w.Address, "file": file}).Debug("Loaded keystore")
	return w, nil
}

func (s *Service) saveKeystore(w walletkit.Wallet, password string) (string, error) {
	if err := os.MkdirAll(s.keystoreDir, dirPerm); err != nil {
		return "", walletkit.NewAPIError(walletkit.ErrFileAccess, err)
	}
	file, err := s.wb.EncryptKeystore(s.keystoreDir, w, password)
	if err != nil {
		return "", walletkit.NewAPIError(walletkit.ErrKeystoreWrite, err)
	}
	return file, nil
}

func writeNewFile(file string, data []byte) error {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if os.IsExist(err) {
		return walletkit.NewAPIError(walletkit.ErrFileAccess, errors.Errorf("file exists - %s", file))
	}
	if err != nil {
		return walletkit.NewAPIError(walletkit.ErrFileAccess, err)
	}
	if _, err = f.Write(data); err != nil {
		f.Close() // nolint: errcheck
		return walletkit.NewAPIError(walletkit.ErrFileAccess, err)
	}
	if err = f.Close(); err != nil {
		return walletkit.NewAPIError(walletkit.ErrFileAccess, err)
	}
	return nil
}
