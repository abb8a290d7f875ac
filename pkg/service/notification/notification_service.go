/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination notification_service_mocks_test.go -self_package mocks -package notification_test -source=notification_service.go -mock_names accessTokenVerifier=MockAccessTokenVerifier,credentialStore=MockCredentialStore,metricsProvider=MockMetricsProvider

package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	"github.com/trustbloc/credential-issuer/pkg/authorization"
	"github.com/trustbloc/credential-issuer/pkg/service/credential"
)

var logger = log.New("notification-service")

var (
	ErrInvalidEvent          = errors.New("invalid notification event")
	ErrCredentialNotFound    = errors.New("credential not found")
	ErrWalletSubjectMismatch = errors.New("access token sub does not match credential walletSubjectId")
	ErrInvalidNotificationID = errors.New("notification_id does not match the issued credential")
)

// Event is a wallet notification event.
type Event string

const (
	EventCredentialAccepted Event = "credential_accepted"
	EventCredentialFailure  Event = "credential_failure"
	EventCredentialDeleted  Event = "credential_deleted"
)

// Valid reports whether e is a known event.
func (e Event) Valid() bool {
	switch e {
	case EventCredentialAccepted, EventCredentialFailure, EventCredentialDeleted:
		return true
	default:
		return false
	}
}

// Request is a wallet notification.
type Request struct {
	AccessToken      string
	NotificationID   string
	Event            Event
	EventDescription string
}

type accessTokenVerifier interface {
	Verify(ctx context.Context, token string) (*authorization.AccessTokenClaims, error)
}

type credentialStore interface {
	Get(ctx context.Context, credentialIdentifier string) (*credential.StoredCredential, error)
}

type metricsProvider interface {
	NotificationReceived(event string)
}

type Config struct {
	AccessTokens accessTokenVerifier
	Credentials  credentialStore
	Metrics      metricsProvider
}

// Service records wallet notifications about issued credentials.
type Service struct {
	accessTokens accessTokenVerifier
	credentials  credentialStore
	metrics      metricsProvider
}

func NewService(cfg *Config) *Service {
	return &Service{
		accessTokens: cfg.AccessTokens,
		credentials:  cfg.Credentials,
		metrics:      cfg.Metrics,
	}
}

// ProcessNotification checks that the notification refers to a credential issued to the bearer of the
// access token and logs the event.
func (s *Service) ProcessNotification(ctx context.Context, req *Request) error {
	if !req.Event.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEvent, req.Event)
	}

	claims, err := s.accessTokens.Verify(ctx, req.AccessToken)
	if err != nil {
		return err
	}

	stored, err := s.credentials.Get(ctx, claims.CredentialIdentifier)
	if err != nil {
		if errors.Is(err, credential.ErrDataNotFound) {
			return fmt.Errorf("%w: %s", ErrCredentialNotFound, claims.CredentialIdentifier)
		}

		return fmt.Errorf("get stored credential: %w", err)
	}

	if stored.WalletSubjectID != claims.WalletSubjectID {
		return ErrWalletSubjectMismatch
	}

	if stored.NotificationID != req.NotificationID {
		return ErrInvalidNotificationID
	}

	logger.Infoc(ctx, "Notification received",
		logfields.WithNotificationID(req.NotificationID),
		logfields.WithNotificationEvent(string(req.Event)),
		logfields.WithAdditionalMessage(req.EventDescription),
		logfields.WithCredentialID(stored.CredentialIdentifier),
		logfields.WithVCType(stored.VCType),
	)

	if s.metrics != nil {
		s.metrics.NotificationReceived(string(req.Event))
	}

	return nil
}
