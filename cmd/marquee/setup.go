package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/marquee/internal/adapter"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Store your TMDB API key",
	Long: `Prompts for a TMDB API key (v3 auth) and saves it to the config file.
Get one at https://www.themoviedb.org/settings/api.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal() {
			return fmt.Errorf("setup needs an interactive terminal; set TMDB_API_KEY instead")
		}
		_, err := promptAPIKey()
		return err
	},
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptAPIKey reads a key without echo, saves it, and returns it
func promptAPIKey() (string, error) {
	fmt.Println()
	fmt.Println("Welcome to Marquee!")
	fmt.Println()
	fmt.Println("A TMDB API key is required: https://www.themoviedb.org/settings/api")

	var key string
	for key == "" {
		fmt.Print("API key: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		key = strings.TrimSpace(string(raw))
		if key == "" {
			fmt.Println("API key cannot be empty. Please try again.")
		}
	}

	if err := adapter.SaveAPIKey(key); err != nil {
		return "", fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Printf("✓ Configuration saved to %s\n", adapter.ConfigFile())
	fmt.Println()
	return key, nil
}
