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
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Identifiers and sizes of the only envelope format currently produced and accepted.
const (
	Version   = 1
	Algorithm = "aes-256-gcm"
	KDF       = "scrypt"

	saltLen = 32
	ivLen   = 16
	tagLen  = 16
	keyLen  = 32
)

// Envelope is the self-describing container holding an encrypted secret.
// All byte fields are hex encoded.
type Envelope struct {
	Version    int       `json:"v"`
	Algorithm  string    `json:"alg"`
	KDF        string    `json:"kdf"`
	KDFParams  KDFParams `json:"kdfparams"`
	IV         string    `json:"iv"`
	Tag        string    `json:"tag"`
	Ciphertext string    `json:"ct"`
}

// KDFParams holds the scrypt parameters and the salt used to derive the key for an envelope.
type KDFParams struct {
	N    int    `json:"N"`
	R    int    `json:"r"`
	P    int    `json:"p"`
	Salt string `json:"salt"`
}

// ScryptParams returns the cost parameters recorded in the envelope.
func (kp KDFParams) ScryptParams() ScryptParams {
	return ScryptParams{N: kp.N, R: kp.R, P: kp.P}
}

// Marshal returns the JSON encoding of the envelope.
func (e *Envelope) Marshal() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(b), nil
}

// Encrypt encrypts the secret with a key derived from the password using
// DefaultScryptParams and returns the envelope as a JSON string.
//
// Salt and IV are freshly generated on every call, so encrypting the same
// secret twice yields different envelopes.
func Encrypt(secret, password string) (string, error) {
	return EncryptWithParams(secret, password, DefaultScryptParams)
}

// EncryptWithParams is like Encrypt but uses the given scrypt parameters. The
// parameters are recorded in the envelope, so Decrypt needs no configuration.
func EncryptWithParams(secret, password string, sp ScryptParams) (string, error) {
	return encrypt(rand.Reader, secret, password, sp)
}

func encrypt(rng io.Reader, secret, password string, sp ScryptParams) (string, error) {
	if secret == "" {
		return "", errors.WithStack(ErrEmptySecret)
	}
	if err := sp.Validate(); err != nil {
		return "", errors.Wrap(ErrInvalidScryptParams, err.Error())
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rng, salt); err != nil {
		return "", errors.Wrap(err, "generating salt")
	}
	iv := make([]byte, ivLen)
	if _, err := io.ReadFull(rng, iv); err != nil {
		return "", errors.Wrap(err, "generating iv")
	}

	key, err := deriveKey(password, salt, sp)
	if err != nil {
		return "", errors.Wrap(err, "deriving key")
	}
	defer zeroBytes(key)

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}
	sealed := aead.Seal(nil, iv, []byte(secret), nil)
	ct, tag := sealed[:len(sealed)-tagLen], sealed[len(sealed)-tagLen:]

	e := &Envelope{
		Version:   Version,
		Algorithm: Algorithm,
		KDF:       KDF,
		KDFParams: KDFParams{
			N:    sp.N,
			R:    sp.R,
			P:    sp.P,
			Salt: hex.EncodeToString(salt),
		},
		IV:         hex.EncodeToString(iv),
		Tag:        hex.EncodeToString(tag),
		Ciphertext: hex.EncodeToString(ct),
	}
	return e.Marshal()
}

// Decrypt recovers the secret from an envelope produced by Encrypt.
//
// The key is derived with the scrypt parameters stored in the envelope. If
// the authentication tag does not verify, ErrDecryptionFailed is returned and
// no plaintext is released. A wrong password cannot be told apart from a
// corrupted envelope.
func Decrypt(envelope, password string) (string, error) {
	e, err := Parse(envelope)
	if err != nil {
		return "", err
	}

	salt, iv, tag, ct, err := e.decodeFields()
	if err != nil {
		return "", err
	}

	key, err := deriveKey(password, salt, e.KDFParams.ScryptParams())
	if err != nil {
		return "", errors.Wrap(ErrMalformedEnvelope, err.Error())
	}
	defer zeroBytes(key)

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}
	plaintext, err := aead.Open(nil, iv, append(ct, tag...), nil)
	if err != nil {
		return "", errors.WithStack(ErrDecryptionFailed)
	}
	return string(plaintext), nil
}

// Parse decodes an envelope from its JSON string and checks that it is
// complete and of a supported format. It does not verify the ciphertext.
func Parse(envelope string) (*Envelope, error) {
	var w wireEnvelope
	if err := json.Unmarshal([]byte(envelope), &w); err != nil {
		return nil, errors.Wrapf(ErrMalformedEnvelope, "parsing json: %v", err)
	}

	if w.Version == nil || *w.Version != Version {
		return nil, errors.Wrap(ErrUnsupportedEnvelope, "version")
	}
	if w.Algorithm == nil || *w.Algorithm != Algorithm {
		return nil, errors.Wrap(ErrUnsupportedEnvelope, "algorithm")
	}
	if w.KDF == nil || *w.KDF != KDF {
		return nil, errors.Wrap(ErrUnsupportedEnvelope, "kdf")
	}

	missing := w.missingField()
	if missing != "" {
		return nil, errors.Wrapf(ErrMalformedEnvelope, "missing field %q", missing)
	}

	e := &Envelope{
		Version:   *w.Version,
		Algorithm: *w.Algorithm,
		KDF:       *w.KDF,
		KDFParams: KDFParams{
			N:    *w.KDFParams.N,
			R:    *w.KDFParams.R,
			P:    *w.KDFParams.P,
			Salt: *w.KDFParams.Salt,
		},
		IV:         *w.IV,
		Tag:        *w.Tag,
		Ciphertext: *w.Ciphertext,
	}
	if err := e.KDFParams.ScryptParams().Validate(); err != nil {
		return nil, errors.Wrap(ErrMalformedEnvelope, err.Error())
	}
	return e, nil
}

func (e *Envelope) decodeFields() (salt, iv, tag, ct []byte, err error) {
	fields := []struct {
		name string
		val  string
		dst  *[]byte
		size int // expected size in bytes, 0 for any non-empty value.
	}{
		{"kdfparams.salt", e.KDFParams.Salt, &salt, 0},
		{"iv", e.IV, &iv, ivLen},
		{"tag", e.Tag, &tag, tagLen},
		{"ct", e.Ciphertext, &ct, 0},
	}
	for _, f := range fields {
		if !isLowerHex(f.val) {
			return nil, nil, nil, nil, errors.Wrapf(ErrMalformedEnvelope, "%s is not lowercase hex", f.name)
		}
		b, decErr := hex.DecodeString(f.val)
		if decErr != nil {
			return nil, nil, nil, nil, errors.Wrapf(ErrMalformedEnvelope, "decoding %s: %v", f.name, decErr)
		}
		if len(b) == 0 || (f.size != 0 && len(b) != f.size) {
			return nil, nil, nil, nil, errors.Wrapf(ErrMalformedEnvelope, "invalid length of %s: %d", f.name, len(b))
		}
		*f.dst = b
	}
	return salt, iv, tag, ct, nil
}

// isLowerHex reports whether s contains only the characters 0-9 and a-f.
func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "initializing aes")
	}
	aead, err := cipher.NewGCMWithNonceSize(block, ivLen)
	if err != nil {
		return nil, errors.Wrap(err, "initializing gcm")
	}
	return aead, nil
}

// wireEnvelope mirrors Envelope with pointer fields so that absent fields can be told apart from zero values.
type wireEnvelope struct {
	Version   *int    `json:"v"`
	Algorithm *string `json:"alg"`
	KDF       *string `json:"kdf"`
	KDFParams *struct {
		N    *int    `json:"N"`
		R    *int    `json:"r"`
		P    *int    `json:"p"`
		Salt *string `json:"salt"`
	} `json:"kdfparams"`
	IV         *string `json:"iv"`
	Tag        *string `json:"tag"`
	Ciphertext *string `json:"ct"`
}

func (w *wireEnvelope) missingField() string {
	switch {
	case w.KDFParams == nil:
		return "kdfparams"
	case w.KDFParams.N == nil:
		return "kdfparams.N"
	case w.KDFParams.R == nil:
		return "kdfparams.r"
	case w.KDFParams.P == nil:
		return "kdfparams.p"
	case w.KDFParams.Salt == nil:
		return "kdfparams.salt"
	case w.IV == nil:
		return "iv"
	case w.Tag == nil:
		return "tag"
	case w.Ciphertext == nil:
		return "ct"
	}
	return ""
}
