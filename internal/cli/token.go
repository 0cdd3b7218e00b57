package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"watchgate/internal/platform/jwttoken"
)

var (
	tokenClientID string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for the screening API",
	Long: `Issue a signed bearer token for an API client. Requires
WATCHGATE_JWT_SIGNING_KEY to match the server's key.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client", "", "API client identifier (required)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("client")
}

func runToken(cmd *cobra.Command, args []string) error {
	if cfg.JWTSigningKey == "" {
		return fmt.Errorf("WATCHGATE_JWT_SIGNING_KEY is not set")
	}

	svc := jwttoken.NewService(cfg.JWTSigningKey, "watchgate", "watchgate-api")
	token, err := svc.GenerateAccessToken(tokenClientID, tokenTTL)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}

	fmt.Println(token)
	return nil
}
