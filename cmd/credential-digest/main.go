// Command credential-digest prints the stored digest of each plaintext under
// the configured credential key, for seeding users or checking a stored row.
//
// Usage:
//
//	credential-digest secret1 secret2
//	echo secret1 | credential-digest
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/wallet-api/internal/config"
	"github.com/phrazzld/wallet-api/internal/service/auth"
)

func main() {
	key, err := config.LoadCredentialKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load credential key: %v\n", err)
		os.Exit(1)
	}

	if err := run(key, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run writes one "plaintext<TAB>hex digest" line per plaintext. Plaintexts
// come from args, or one per line from stdin when args is empty.
func run(key string, args []string, stdin io.Reader, out io.Writer) error {
	cipher, err := auth.NewCredentialCipher([]byte(key))
	if err != nil {
		return fmt.Errorf("failed to initialize credential cipher: %w", err)
	}

	emit := func(plaintext string) error {
		_, err := fmt.Fprintf(out, "%s\t%s\n", plaintext, hex.EncodeToString(cipher.Transform(plaintext)))
		return err
	}

	if len(args) > 0 {
		for _, p := range args {
			if err := emit(p); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
