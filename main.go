// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/msalgueiro/georect/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
