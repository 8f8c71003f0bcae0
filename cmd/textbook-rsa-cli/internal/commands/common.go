package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// TextbookRSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type TextbookRSACommandHandler struct {
	processor cryptoalg.TextbookRSAProcessor
	logger    logger.Logger
}

// NewTextbookRSACommandHandler initializes a handler with a console logger and a processor
// sampling primes from crypto/rand.
func NewTextbookRSACommandHandler() (*TextbookRSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	processor, err := cryptography.NewTextbookRSAProcessor(nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}

	return &TextbookRSACommandHandler{
		processor: processor,
		logger:    loggerInstance,
	}, nil
}

// addKeyFlags registers --p, --q and --e defaulting to the demo key
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("p", "", cryptoalg.DemoPrimeP, "First prime factor")
	cmd.Flags().Int64P("q", "", cryptoalg.DemoPrimeQ, "Second prime factor")
	cmd.Flags().Int64P("e", "", int64(cryptoalg.DefaultPublicExponent), "Public exponent")
}

// keyPairFromFlags derives the key pair described by --p, --q and --e
func (commandHandler *TextbookRSACommandHandler) keyPairFromFlags(cmd *cobra.Command) (*cryptoalg.KeyPair, error) {
	p, err := cmd.Flags().GetInt64("p")
	if err != nil {
		return nil, fmt.Errorf("invalid p flag: %w", err)
	}
	q, err := cmd.Flags().GetInt64("q")
	if err != nil {
		return nil, fmt.Errorf("invalid q flag: %w", err)
	}
	e, err := cmd.Flags().GetInt64("e")
	if err != nil {
		return nil, fmt.Errorf("invalid e flag: %w", err)
	}
	return commandHandler.processor.DeriveKeyPair(p, q, cryptoalg.Key(e))
}

// formatSymbols renders bytes as space-separated decimal symbols
func formatSymbols(b []byte) string {
	fields := make([]string, len(b))
	for i, c := range b {
		fields[i] = strconv.Itoa(int(c))
	}
	return strings.Join(fields, " ")
}

// parseSymbols reads space- or comma-separated decimal symbols in [0, 255]
func parseSymbols(s string) ([]byte, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("no symbols given")
	}

	b := make([]byte, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("symbol %q at offset %d: %w", field, i, err)
		}
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("symbol %d at offset %d: %w", n, i, cryptoalg.ErrSymbolOutOfRange)
		}
		b[i] = byte(n)
	}
	return b, nil
}
