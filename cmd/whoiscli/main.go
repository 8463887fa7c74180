// Command whoiscli queries a running WHOIS lookup API from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	app := &cobra.Command{
		Use:     os.Args[0],
		Short:   "WHOIS lookups against the whois-api server",
		Version: version,
	}

	app.AddCommand(lookupEntry())

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
