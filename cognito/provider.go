package cognito

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/International-Combat-Archery-Alliance/member-signup/cognito"

// CallTimeout bounds every Cognito call.
const CallTimeout = 10 * time.Second

var _ signup.IdentityProvider = &Provider{}

// Client is the part of the Cognito user pools API used for sign up.
type Client interface {
	SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, params *cip.ResendConfirmationCodeInput, optFns ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
}

// Provider registers members in a Cognito user pool. Usernames are email
// addresses.
type Provider struct {
	client       Client
	clientID     string
	clientSecret string
	tracer       trace.Tracer
}

// NewProvider makes a Provider for the given app client. clientSecret may be
// empty for app clients created without a secret.
func NewProvider(client Client, clientID string, clientSecret string) *Provider {
	return &Provider{
		client:       client,
		clientID:     clientID,
		clientSecret: clientSecret,
		tracer:       otel.Tracer(tracerName),
	}
}

func (p *Provider) Register(ctx context.Context, identity signup.Identity, password string) error {
	ctx, span := p.startSpan(ctx, "SignUp")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	_, err := p.client.SignUp(ctx, &cip.SignUpInput{
		ClientId:       aws.String(p.clientID),
		Username:       aws.String(identity.EmailAddress),
		Password:       aws.String(password),
		SecretHash:     p.secretHash(identity.EmailAddress),
		UserAttributes: userAttributes(identity),
	})
	return p.endCall(span, "SignUp", err)
}

func (p *Provider) Confirm(ctx context.Context, emailAddress string, code string) error {
	ctx, span := p.startSpan(ctx, "ConfirmSignUp")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	_, err := p.client.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(emailAddress),
		ConfirmationCode: aws.String(code),
		SecretHash:       p.secretHash(emailAddress),
	})
	return p.endCall(span, "ConfirmSignUp", err)
}

func (p *Provider) ResendCode(ctx context.Context, emailAddress string) error {
	ctx, span := p.startSpan(ctx, "ResendConfirmationCode")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	_, err := p.client.ResendConfirmationCode(ctx, &cip.ResendConfirmationCodeInput{
		ClientId:   aws.String(p.clientID),
		Username:   aws.String(emailAddress),
		SecretHash: p.secretHash(emailAddress),
	})
	return p.endCall(span, "ResendConfirmationCode", err)
}

func (p *Provider) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, "cognito."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.system", "aws-api"),
			attribute.String("rpc.service", "CognitoIdentityProvider"),
			attribute.String("rpc.method", operation),
		),
	)
}

func (p *Provider) endCall(span trace.Span, operation string, err error) error {
	if err == nil {
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, operation+" failed")

	return translateError(operation, err)
}

// SECRET_HASH is required on every call when the app client has a secret.
func (p *Provider) secretHash(username string) *string {
	if p.clientSecret == "" {
		return nil
	}
	return aws.String(SecretHash(p.clientSecret, username, p.clientID))
}

// SecretHash is base64(HMAC-SHA256(clientSecret, username + clientID)).
func SecretHash(clientSecret, username, clientID string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func userAttributes(identity signup.Identity) []types.AttributeType {
	attrs := []types.AttributeType{
		{Name: aws.String("email"), Value: aws.String(identity.EmailAddress)},
		{Name: aws.String("given_name"), Value: aws.String(identity.GivenName)},
		{Name: aws.String("family_name"), Value: aws.String(identity.FamilyName)},
	}
	// Cognito rejects an empty phone_number, so leave it out entirely.
	if identity.PhoneNumber != "" {
		attrs = append(attrs, types.AttributeType{Name: aws.String("phone_number"), Value: aws.String(identity.PhoneNumber)})
	}
	return attrs
}

// translateError turns errors Cognito answered with into
// *signup.ProviderError. Anything else (timeouts, network) is wrapped as is.
func translateError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("cognito %s timed out: %w", operation, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &signup.ProviderError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Cause:   err,
		}
	}

	return fmt.Errorf("cognito %s failed: %w", operation, err)
}
