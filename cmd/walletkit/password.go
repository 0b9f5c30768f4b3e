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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// PasswordEnvVar is the environment variable from which the password is read, if set.
const PasswordEnvVar = "WALLETKIT_PASSWORD"

// getPassword returns the password from the environment or reads it from the terminal without echo.
// If confirm is true, the password is read a second time and both must match.
func getPassword(stderr io.Writer, prompt string, confirm bool) (string, error) {
	if envPass, ok := os.LookupEnv(PasswordEnvVar); ok {
		return envPass, nil
	}

	password, err := readPassword(stderr, prompt)
	if err != nil {
		return "", err
	}
	if !confirm {
		return password, nil
	}
	again, err := readPassword(stderr, "Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != again {
		return "", errors.New("passwords do not match")
	}
	return password, nil
}

func readPassword(stderr io.Writer, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.Errorf("cannot read password: stdin is not a terminal. Set %s environment variable",
			PasswordEnvVar)
	}
	fmt.Fprint(stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(stderr) // Print newline after password input
	if err != nil {
		return "", errors.Wrap(err, "reading password")
	}
	return string(password), nil
}

// readLine reads a single line from the reader, such as a mnemonic piped to the command.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.WithStack(err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("no input")
	}
	return line, nil
}
