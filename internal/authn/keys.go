package authn

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
)

// ErrSigningSecretNotFound is returned when the configured secret does not exist.
var ErrSigningSecretNotFound = errors.New("signing key secret not found")

type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// ResolveSigningKey reads the signing key from Secrets Manager when secretID
// is set and falls back to the statically configured key otherwise.
func ResolveSigningKey(ctx context.Context, sm SecretsManagerAPI, secretID, fallback string) (string, error) {
	if secretID == "" {
		if fallback == "" {
			return "", ErrNoSigningKey
		}
		return fallback, nil
	}

	if sm == nil {
		return "", fmt.Errorf("secret %q configured but no secrets manager client", secretID)
	}

	out, err := sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			if apiErr.ErrorCode() == "ResourceNotFoundException" {
				return "", fmt.Errorf("%w: %s", ErrSigningSecretNotFound, secretID)
			}
			return "", fmt.Errorf("fetching signing key %q failed with %s: %w", secretID, apiErr.ErrorCode(), err)
		}
		return "", fmt.Errorf("fetching signing key %q: %w", secretID, err)
	}

	if out.SecretString == nil || *out.SecretString == "" {
		return "", fmt.Errorf("secret %q has no string value", secretID)
	}
	return *out.SecretString, nil
}
