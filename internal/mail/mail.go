// Package mail sends account notifications through Amazon SES.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"
	"github.com/ncc-uat/ncc-admin-services/models"
)

type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Mailer notifies users about changes to their account.
type Mailer interface {
	SendWelcome(ctx context.Context, user models.UserRow) error
}

type SESMailer struct {
	client SESAPI
	from   string
	appURL string
}

func NewSESMailer(client SESAPI, from, appURL string) *SESMailer {
	return &SESMailer{client: client, from: from, appURL: appURL}
}

// SendWelcome emails a newly registered user their sign-in details.
func (m *SESMailer) SendWelcome(ctx context.Context, user models.UserRow) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nAn NCC UAT account has been created for you with the %s role.\n"+
			"Sign in at %s using %s.\n",
		user.FirstName, user.Role, m.appURL, user.Email)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{user.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String("Your NCC UAT account")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("SES rejected welcome email to %s (%s): %w", user.Email, apiErr.ErrorCode(), err)
		}
		return fmt.Errorf("failed to send welcome email to %s: %w", user.Email, err)
	}
	return nil
}

// NoopMailer is used when mail delivery is disabled.
type NoopMailer struct{}

func (NoopMailer) SendWelcome(context.Context, models.UserRow) error { return nil }
