// Package keys implements key tooling that runs outside the HTTP server:
// seed phrase generation and one-shot inspection of the persisted keyring.
package keys

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"

	"github/chapool/go-keyring/internal/util/command"
)

const wordsFlag string = "words"

func New() *cobra.Command {
	return command.NewSubcommandGroup("keys",
		newMnemonic(),
		newAccounts(),
	)
}

func newMnemonic() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generates a fresh BIP39 seed phrase",
		Run: func(cmd *cobra.Command, _ []string) {
			words, err := cmd.Flags().GetInt(wordsFlag)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			// 12 words = 128 bits of entropy, 24 words = 256 bits
			var bits int
			switch words {
			case 12:
				bits = 128
			case 24:
				bits = 256
			default:
				fmt.Println("words must be 12 or 24")
				os.Exit(1)
			}

			entropy, err := bip39.NewEntropy(bits)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			mnemonic, err := bip39.NewMnemonic(entropy)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			fmt.Println(mnemonic)
		},
	}

	cmd.Flags().Int(wordsFlag, 12, "Seed phrase length, 12 or 24 words")

	return cmd
}
