package commands

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/spf13/cobra"
)

// DeriveKeysCmd derives the private exponent for --p, --q and --e and prints the key pair
func (commandHandler *TextbookRSACommandHandler) DeriveKeysCmd(cmd *cobra.Command, _ []string) error {
	keyPair, err := commandHandler.keyPairFromFlags(cmd)
	if err != nil {
		return err
	}

	p, _ := cmd.Flags().GetInt64("p")
	q, _ := cmd.Flags().GetInt64("q")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "N=%d phi=%d e=%d d=%d\n",
		keyPair.Modulus, cryptography.Totient(p, q), keyPair.PublicExponent, keyPair.PrivateExponent)
	return err
}

// GeneratePrimesCmd samples two primes and prints the first admissible key pair
func (commandHandler *TextbookRSACommandHandler) GeneratePrimesCmd(cmd *cobra.Command, _ []string) error {
	upperBound, err := cmd.Flags().GetInt64("upper-bound")
	if err != nil {
		return fmt.Errorf("invalid upper-bound flag: %w", err)
	}
	e, err := cmd.Flags().GetInt64("e")
	if err != nil {
		return fmt.Errorf("invalid e flag: %w", err)
	}
	minModulus, err := cmd.Flags().GetUint64("min-modulus")
	if err != nil {
		return fmt.Errorf("invalid min-modulus flag: %w", err)
	}
	maxModulus, err := cmd.Flags().GetUint64("max-modulus")
	if err != nil {
		return fmt.Errorf("invalid max-modulus flag: %w", err)
	}

	keyPair, p, q, err := commandHandler.processor.GenerateKeyPair(upperBound, cryptoalg.Key(e), minModulus, maxModulus)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "p=%d q=%d N=%d e=%d d=%d\n",
		p, q, keyPair.Modulus, keyPair.PublicExponent, keyPair.PrivateExponent)
	return err
}

// InitKeyCommands registers key derivation and generation commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewTextbookRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create textbook RSA command handler %w", err)
	}

	var deriveKeysCmd = &cobra.Command{
		Use:   "derive-keys",
		Short: "Derive a key pair from two primes and a public exponent",
		RunE:  handler.DeriveKeysCmd,
	}
	addKeyFlags(deriveKeysCmd)
	rootCmd.AddCommand(deriveKeysCmd)

	defaults := config.DefaultKeySettings()
	var generatePrimesCmd = &cobra.Command{
		Use:   "generate-primes",
		Short: "Generate a key pair from randomly sampled primes",
		RunE:  handler.GeneratePrimesCmd,
	}
	generatePrimesCmd.Flags().Int64P("upper-bound", "", defaults.PrimeUpperBound, "Exclusive upper bound of sampled primes")
	generatePrimesCmd.Flags().Int64P("e", "", defaults.PublicExponent, "Public exponent")
	generatePrimesCmd.Flags().Uint64P("min-modulus", "", defaults.MinModulus, "Smallest accepted modulus")
	generatePrimesCmd.Flags().Uint64P("max-modulus", "", defaults.MaxModulus, "Largest accepted modulus")
	rootCmd.AddCommand(generatePrimesCmd)
	return nil
}
