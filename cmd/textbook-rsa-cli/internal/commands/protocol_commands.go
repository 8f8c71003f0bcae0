package commands

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"

	"github.com/spf13/cobra"
)

// EncryptCmd encrypts --message with the public key and prints the ciphertext symbols
func (commandHandler *TextbookRSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	keyPair, err := commandHandler.keyPairFromFlags(cmd)
	if err != nil {
		return err
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	cipherText, err := commandHandler.processor.Encrypt([]byte(message), keyPair.PublicKey())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatSymbols(cipherText))
	return err
}

// DecryptCmd decrypts --ciphertext symbols with the private key and prints the plaintext
func (commandHandler *TextbookRSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	keyPair, err := commandHandler.keyPairFromFlags(cmd)
	if err != nil {
		return err
	}
	symbols, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		return fmt.Errorf("invalid ciphertext flag: %w", err)
	}
	cipherText, err := parseSymbols(symbols)
	if err != nil {
		return err
	}

	plainText, err := commandHandler.processor.Decrypt(cipherText, keyPair.PrivateKey())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), plainText)
	return err
}

// SignCmd signs the hash of --message with the private key and prints the signature symbols
func (commandHandler *TextbookRSACommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	keyPair, err := commandHandler.keyPairFromFlags(cmd)
	if err != nil {
		return err
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	signature, err := commandHandler.processor.Sign(message, keyPair.PrivateKey())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatSymbols(signature))
	return err
}

// VerifyCmd checks --signature against the hash of --message
func (commandHandler *TextbookRSACommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	keyPair, err := commandHandler.keyPairFromFlags(cmd)
	if err != nil {
		return err
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	symbols, err := cmd.Flags().GetString("signature")
	if err != nil {
		return fmt.Errorf("invalid signature flag: %w", err)
	}
	signature, err := parseSymbols(symbols)
	if err != nil {
		return err
	}

	valid, err := commandHandler.processor.Verify(message, signature, keyPair.PublicKey())
	if err != nil {
		return err
	}

	if valid {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid")
	} else {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Signature is invalid")
	}
	return err
}

// RoundTripCmd runs the encryption and signature round trips and prints both outcomes
func (commandHandler *TextbookRSACommandHandler) RoundTripCmd(cmd *cobra.Command, _ []string) error {
	keyPair, err := commandHandler.keyPairFromFlags(cmd)
	if err != nil {
		return err
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	encryption, err := commandHandler.processor.EncryptionRoundTrip(message, keyPair)
	if err != nil {
		return err
	}
	signature, err := commandHandler.processor.SignatureRoundTrip(message, keyPair)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Encryption/Decryption successful: %t\n", encryption.Success); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Signature/Verification successful: %t\n", signature.Success)
	return err
}

// InitProtocolCommands registers encryption, signature and round-trip commands
func InitProtocolCommands(rootCmd *cobra.Command) error {
	handler, err := NewTextbookRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create textbook RSA command handler %w", err)
	}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message byte by byte with the public key",
		RunE:  handler.EncryptCmd,
	}
	addKeyFlags(encryptCmd)
	encryptCmd.Flags().StringP("message", "", cryptoalg.DemoMessage, "Plaintext to encrypt")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt ciphertext symbols with the private key",
		RunE:  handler.DecryptCmd,
	}
	addKeyFlags(decryptCmd)
	decryptCmd.Flags().StringP("ciphertext", "", "", "Space-separated ciphertext symbols")
	_ = decryptCmd.MarkFlagRequired("ciphertext")
	rootCmd.AddCommand(decryptCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign the hash of a message with the private key",
		RunE:  handler.SignCmd,
	}
	addKeyFlags(signCmd)
	signCmd.Flags().StringP("message", "", cryptoalg.DemoMessage, "Message to sign")
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over a message with the public key",
		RunE:  handler.VerifyCmd,
	}
	addKeyFlags(verifyCmd)
	verifyCmd.Flags().StringP("message", "", cryptoalg.DemoMessage, "Signed message")
	verifyCmd.Flags().StringP("signature", "", "", "Space-separated signature symbols")
	_ = verifyCmd.MarkFlagRequired("signature")
	rootCmd.AddCommand(verifyCmd)

	var roundTripCmd = &cobra.Command{
		Use:   "roundtrip",
		Short: "Run the encryption and signature round trips",
		RunE:  handler.RoundTripCmd,
	}
	addKeyFlags(roundTripCmd)
	roundTripCmd.Flags().StringP("message", "", cryptoalg.DemoMessage, "Message for both round trips")
	rootCmd.AddCommand(roundTripCmd)
	return nil
}
