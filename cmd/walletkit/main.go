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
	"os"

	"github.com/fatih/color"
)

// version of the walletkit command, set at build time using -ldflags "-X main.version=...".
var version = "dev"

// SPrintf style functions that produce colored text.
var redf, yellowf, greenf func(format string, a ...interface{}) string

func init() {
	redf = color.New(color.FgRed).SprintfFunc()
	yellowf = color.New(color.FgYellow).SprintfFunc()
	greenf = color.New(color.FgGreen).SprintfFunc()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, redf("Error: %v", err))
		os.Exit(1)
	}
}
