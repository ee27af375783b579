// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/menuk/menuk/cmd/menuk"

func main() {
	cmd.Execute()
}
