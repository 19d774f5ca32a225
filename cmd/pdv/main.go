// pdv is the point-of-sale terminal: it keeps the cart of one PDV station in
// redis, draws it as a table and submits sales to the PDV API.
//
// Usage:
//
//	pdv show
//	pdv add <id> [nome preco]
//	pdv inc <id> | pdv dec <id>
//	pdv qty <id> -- <delta>
//	pdv remove <id>
//	pdv checkout [--cpf 000.000.000-00]
//	pdv products
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pdv:", err)
		os.Exit(1)
	}
}
