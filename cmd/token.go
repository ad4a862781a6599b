package cmd

import (
	"context"
	"fmt"

	"github.com/ncc-uat/ncc-admin-services/internal/authn"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var tokenEmail string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development token for the persona behind an email",
	Run: func(cmd *cobra.Command, args []string) {

		commonSetUp()

		issuer, err := newIssuer(context.Background(), appCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize token issuer")
		}

		user := authn.MockIdentity(tokenEmail)
		token, err := issuer.Issue(user)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to issue token")
		}

		log.Info().Str("user", user.Email).Bool("admin", user.IsAdmin).Bool("business", user.IsBusiness).Msg("Token issued")
		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "admin@safaricom.co.ke", "email of the user to issue the token for")
}
