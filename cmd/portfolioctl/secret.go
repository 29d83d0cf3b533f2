package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashSecretCmd = &cobra.Command{
	Use:   "hash-secret [secret]",
	Short: "Print a bcrypt hash for ADMIN_SECRET_HASH",
	Long: `hash-secret prints a bcrypt hash of the admin secret. The secret is read
from the first argument or, when absent, from the first line of stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var secret string
		if len(args) == 1 {
			secret = args[0]
		} else {
			line, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			secret = line
		}

		hash, err := hashSecret(secret)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func hashSecret(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}
