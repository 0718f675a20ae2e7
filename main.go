// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/argbind/cmd/argbind"

func main() {
	cmd.Execute()
}
