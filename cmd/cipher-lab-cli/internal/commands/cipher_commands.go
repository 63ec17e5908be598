package commands

import (
	"fmt"

	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/infrastructure/cryptography"
	"github.com/arya2004/cybersecurity/internal/pkg/bitvec"
	"github.com/arya2004/cybersecurity/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CipherCommandHandler encapsulates logic for running the block ciphers via CLI.
type CipherCommandHandler struct {
	feistelProcessor ciphers.BlockCipherProcessor
	spnProcessor     ciphers.BlockCipherProcessor
	logger           logger.Logger
}

// NewCipherCommandHandler initializes and returns a CipherCommandHandler instance with
// configured logger and cipher processors.
func NewCipherCommandHandler() (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	feistelProcessor, err := cryptography.NewProcessor(ciphers.AlgorithmFeistel8, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create feistel8 processor: %w", err)
	}

	spnProcessor, err := cryptography.NewProcessor(ciphers.AlgorithmSPN16, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create spn16 processor: %w", err)
	}

	return &CipherCommandHandler{
		feistelProcessor: feistelProcessor,
		spnProcessor:     spnProcessor,
		logger:           loggerInstance,
	}, nil
}

func (commandHandler *CipherCommandHandler) processorFor(algorithm string) (ciphers.BlockCipherProcessor, error) {
	switch algorithm {
	case ciphers.AlgorithmFeistel8:
		return commandHandler.feistelProcessor, nil
	case ciphers.AlgorithmSPN16:
		return commandHandler.spnProcessor, nil
	default:
		return nil, fmt.Errorf("unsupported algorithm: %s", algorithm)
	}
}

// EncryptCmd encrypts a binary block under a binary key with the selected cipher
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}
	block, err := cmd.Flags().GetString("block")
	if err != nil {
		commandHandler.logger.Error("invalid block flag ", err)
		return
	}
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}

	processor, err := commandHandler.processorFor(algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	blockVector, err := bitvec.Parse(block)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyVector, err := bitvec.Parse(key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherText, err := processor.Encrypt(blockVector, keyVector)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("ciphertext ", cipherText.String())
}

// DecryptCmd decrypts a binary block under a binary key with the selected cipher
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}
	block, err := cmd.Flags().GetString("block")
	if err != nil {
		commandHandler.logger.Error("invalid block flag ", err)
		return
	}
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}

	processor, err := commandHandler.processorFor(algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	blockVector, err := bitvec.Parse(block)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyVector, err := bitvec.Parse(key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := processor.Decrypt(blockVector, keyVector)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("plaintext ", plainText.String())
}

// RoundKeysCmd derives and prints the round keys for a binary key with the selected cipher
func (commandHandler *CipherCommandHandler) RoundKeysCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}

	processor, err := commandHandler.processorFor(algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyVector, err := bitvec.Parse(key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	roundKeys, err := processor.ExpandKey(keyVector)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for i, roundKey := range roundKeys {
		commandHandler.logger.Info(fmt.Sprintf("K%d %s", i+1, roundKey.String()))
	}
}

// AlgorithmsCmd lists the available cipher constructions and their widths
func (commandHandler *CipherCommandHandler) AlgorithmsCmd(_ *cobra.Command, _ []string) {
	for _, processor := range []ciphers.BlockCipherProcessor{commandHandler.feistelProcessor, commandHandler.spnProcessor} {
		commandHandler.logger.Info(fmt.Sprintf("%s: block %d bits, key %d bits, %d round keys",
			processor.Algorithm(), processor.BlockSize(), processor.KeySize(), processor.RoundKeyCount()))
	}
}

// InitCipherCommands registers cipher-related commands
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create cipher command handler %w", err)
	}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a binary block with a selected cipher",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("algorithm", "", "feistel8", "Cipher construction (feistel8 or spn16)")
	encryptCmd.Flags().StringP("block", "", "", "Plaintext block as a binary string")
	encryptCmd.Flags().StringP("key", "", "", "Key as a binary string")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a binary block with a selected cipher",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("algorithm", "", "feistel8", "Cipher construction (feistel8 or spn16)")
	decryptCmd.Flags().StringP("block", "", "", "Ciphertext block as a binary string")
	decryptCmd.Flags().StringP("key", "", "", "Key as a binary string")
	rootCmd.AddCommand(decryptCmd)

	var roundKeysCmd = &cobra.Command{
		Use:   "round-keys",
		Short: "Derive the round keys for a key",
		Run:   handler.RoundKeysCmd,
	}
	roundKeysCmd.Flags().StringP("algorithm", "", "feistel8", "Cipher construction (feistel8 or spn16)")
	roundKeysCmd.Flags().StringP("key", "", "", "Key as a binary string")
	rootCmd.AddCommand(roundKeysCmd)

	var algorithmsCmd = &cobra.Command{
		Use:   "algorithms",
		Short: "List the available cipher constructions",
		Run:   handler.AlgorithmsCmd,
	}
	rootCmd.AddCommand(algorithmsCmd)

	return nil
}
