// Package main is the entry point for the cipher-lab-cli application.
// It initializes the root command and registers the cipher sub-commands
// for the CLI, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/arya2004/cybersecurity/cmd/cipher-lab-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "cipher-lab-cli",
		Short: "Toy block cipher CLI tool",
		Long: `cipher-lab-cli is a command-line tool for running miniature block ciphers.
Supports the 8-bit Feistel construction (feistel8, 10-bit keys) and the 16-bit
substitution-permutation construction (spn16, 16-bit keys): encryption,
decryption, round-key inspection and algorithm discovery.

Blocks and keys are given as binary strings, e.g. --block 10111101.
These ciphers illustrate cipher structure and must not protect real data.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register cipher commands
	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
