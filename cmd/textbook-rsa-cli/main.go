// Package main is the entry point for the textbook-rsa-cli application.
// It registers the key and protocol sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA operations CLI tool",
		Long: `textbook-rsa-cli derives and generates small textbook RSA key pairs and runs
byte-wise encryption, decryption, signing and verification with them.

Key pairs are given by their primes (--p, --q) and public exponent (--e).
Without flags the demo key p=13, q=7, e=5 is used.
Textbook RSA has no padding and is for teaching only.`,
		SilenceUsage: true,
	}

	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}
	if err := commands.InitProtocolCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize protocol commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
