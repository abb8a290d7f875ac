/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination revoke_service_mocks_test.go -self_package mocks -package revoke_test -source=revoke_service.go -mock_names credentialStore=MockCredentialStore,statusListClient=MockStatusListClient

package revoke

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	credentialapi "github.com/trustbloc/credential-issuer/pkg/credential"
	"github.com/trustbloc/credential-issuer/pkg/service/credential"
	"github.com/trustbloc/credential-issuer/pkg/statuslist"
)

var logger = log.New("revoke-service")

var (
	ErrInvalidDocumentID  = errors.New("invalid document id")
	ErrCredentialNotFound = errors.New("no credential found for document")
	ErrRevocation         = errors.New("one or more credentials could not be revoked")
)

var documentIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{5,25}$`)

type credentialStore interface {
	ListByDocumentID(ctx context.Context, documentID string) ([]*credential.StoredCredential, error)
	Delete(ctx context.Context, credentialIdentifier string) error
}

type statusListClient interface {
	Revoke(ctx context.Context, entry *credentialapi.StatusListEntry) (*statuslist.RevokeResponse, error)
}

type Config struct {
	Credentials credentialStore
	StatusList  statusListClient
}

// Service revokes every credential issued for a document.
type Service struct {
	credentials credentialStore
	statusList  statusListClient
}

func NewService(cfg *Config) *Service {
	return &Service{
		credentials: cfg.Credentials,
		statusList:  cfg.StatusList,
	}
}

// RevokeCredentials revokes the status list entries of the credentials issued for documentID and
// deletes their records. Every credential is attempted; failures are returned together.
func (s *Service) RevokeCredentials(ctx context.Context, documentID string) error {
	if !documentIDPattern.MatchString(documentID) {
		return fmt.Errorf("%w: %q", ErrInvalidDocumentID, documentID)
	}

	creds, err := s.credentials.ListByDocumentID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("%w: list credentials: %w", ErrRevocation, err)
	}

	if len(creds) == 0 {
		return fmt.Errorf("%w: %s", ErrCredentialNotFound, documentID)
	}

	var errs []error

	for _, c := range creds {
		if err = s.revoke(ctx, c); err != nil {
			logger.Errorc(ctx, "failed to revoke credential",
				logfields.WithCredentialID(c.CredentialIdentifier),
				logfields.WithDocumentID(documentID),
				log.WithError(err),
			)

			errs = append(errs, err)
		}
	}

	logger.Infoc(ctx, "revocation complete",
		logfields.WithDocumentID(documentID),
		zap.Int("succeeded", len(creds)-len(errs)),
		zap.Int("failed", len(errs)),
	)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrRevocation, errors.Join(errs...))
	}

	return nil
}

func (s *Service) revoke(ctx context.Context, c *credential.StoredCredential) error {
	if c.StatusListIndex != nil && c.StatusListURI != nil {
		_, err := s.statusList.Revoke(ctx, &credentialapi.StatusListEntry{
			Idx: *c.StatusListIndex,
			URI: *c.StatusListURI,
		})
		if err != nil {
			return fmt.Errorf("revoke %s: %w", c.CredentialIdentifier, err)
		}
	}

	if err := s.credentials.Delete(ctx, c.CredentialIdentifier); err != nil {
		return fmt.Errorf("delete %s: %w", c.CredentialIdentifier, err)
	}

	return nil
}
