package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/julien-sketch/progressive-pulse/pkg/jwtx"
)

var mintSessionTTL time.Duration

var mintSessionCmd = &cobra.Command{
	Use:   "mint-session <email>",
	Short: "Mint a dashboard session token for local development",
	Long: `Signs a dashboard session token with PULSE_JWT_SECRET and PULSE_JWT_ISSUER
from the environment. The identity provider owns session minting in
production; this exists for local development and testing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := os.Getenv("PULSE_JWT_SECRET")
		if secret == "" {
			return fmt.Errorf("PULSE_JWT_SECRET is not set")
		}
		issuer := os.Getenv("PULSE_JWT_ISSUER")
		if issuer == "" {
			issuer = "pulse"
		}

		signer := &jwtx.HS256Signer{
			Secret: []byte(secret),
			Issuer: issuer,
			TTL:    mintSessionTTL,
		}
		token, err := signer.Sign(args[0], "")
		if err != nil {
			return err
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	mintSessionCmd.Flags().DurationVar(&mintSessionTTL, "ttl", 24*time.Hour, "session lifetime")
}
