/*
Copyright © 2025 PtyRAD authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/ptyrad/ptyenv/pkg/cli"

func main() {
	cli.Execute()
}
