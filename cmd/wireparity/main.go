// Command wireparity checks that two JSON codecs agree on the wire format of
// the registered models, and generates the registry files those models use.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
