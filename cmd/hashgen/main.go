// Command hashgen prints the bcrypt hash of an admin passphrase, for use
// as the ADMIN_PASSWORD_HASH environment variable.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/obrf/congresspay/pkg/auth"
)

func main() {
	password := flag.String("p", "", "admin passphrase to hash")
	flag.Parse()

	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
