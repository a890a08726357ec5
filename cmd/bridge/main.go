// Command bridge inspects and exercises the serialization bridge on a
// seeded sample scene.
//
//	bridge discover
//	bridge save --node Left
//	bridge duplicate --debug
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
