// File: cmd/backref/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// backref expands a periodic back-reference over a generated buffer with a
// selectable strategy and reports timing.

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "backref:", err)
		os.Exit(1)
	}
}
