// Command skyreg manages registry keys and reads and writes registry entries.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "keygen":
		return cmdKeygen(args[1:], out, errOut)
	case "derive":
		return cmdDerive(args[1:], out, errOut)
	case "get":
		return cmdGet(args[1:], out, errOut)
	case "set":
		return cmdSet(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)

		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "skyreg: signed registry client")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  skyreg keygen [--mnemonic] [--passphrase <p>]")
	fmt.Fprintln(w, "  skyreg derive (--seed-hex <hex> | --mnemonic <words>) [--passphrase <p>] [--child <label>]")
	fmt.Fprintln(w, "  skyreg get --public-key ed25519:<hex> --datakey <key> [portal flags]")
	fmt.Fprintln(w, "  skyreg set (--seed-hex <hex> | --mnemonic <words>) --datakey <key> --revision <n> "+
		"(--data <text> | --data-hex <hex>) [portal flags]")
	fmt.Fprintln(w, "    set takes exactly one of --data and --data-hex; --data \"\" publishes empty data")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Portal flags:")
	fmt.Fprintln(w, "  --config <file>   YAML configuration")
	fmt.Fprintln(w, "  --portal <url>    portal URL, overrides the configuration")
	fmt.Fprintln(w, "  --api-key <key>   portal API key, overrides the configuration")
	fmt.Fprintln(w, "  --hashed          the data key is already hashed")
	fmt.Fprintln(w, "  --verbose         log requests to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - get prints the verified entry as JSON; data is hex encoded")
	fmt.Fprintln(w, "  - the same --hashed choice must be used for get and set")
}
