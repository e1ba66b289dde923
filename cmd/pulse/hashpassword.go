package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julien-sketch/progressive-pulse/pkg/cryptox"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Hash an admin password for PULSE_ADMIN_PASSWORD_HASH",
	Long: `Prints the Argon2id hash of a password, in the PHC string format the
service expects in PULSE_ADMIN_PASSWORD_HASH. Reads the password from
stdin when no argument is given, keeping it out of shell history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimRight(line, "\r\n")
		}

		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		hash, err := cryptox.HashPassword(password)
		if err != nil {
			return err
		}

		fmt.Println(hash)
		return nil
	},
}
