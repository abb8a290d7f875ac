/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination credential_service_mocks_test.go -self_package mocks -package credential_test -source=credential_service.go -mock_names accessTokenVerifier=MockAccessTokenVerifier,proofVerifier=MockProofVerifier,offerStore=MockOfferStore,documentStore=MockDocumentStore,documentValidator=MockDocumentValidator,statusListClient=MockStatusListClient,credentialStore=MockCredentialStore,metricsProvider=MockMetricsProvider

package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	"github.com/trustbloc/credential-issuer/pkg/authorization"
	credentialapi "github.com/trustbloc/credential-issuer/pkg/credential"
)

var logger = log.New("credential-service")

type accessTokenVerifier interface {
	Verify(ctx context.Context, token string) (*authorization.AccessTokenClaims, error)
}

type proofVerifier interface {
	Verify(token string) (*authorization.ProofData, error)
}

type offerStore interface {
	Get(ctx context.Context, credentialIdentifier string) (*CredentialOffer, error)
	// Delete returns ErrDataNotFound unless this call removed the offer.
	Delete(ctx context.Context, credentialIdentifier string) error
}

type documentStore interface {
	GetDocument(ctx context.Context, itemID string) (*credentialapi.Document, error)
}

type documentValidator interface {
	Validate(doc *credentialapi.Document) error
}

type statusListClient interface {
	GetIndex(ctx context.Context, expiry time.Time) (*credentialapi.StatusListEntry, error)
}

type credentialStore interface {
	Create(ctx context.Context, cred *StoredCredential) error
}

type metricsProvider interface {
	CredentialIssued(vcType string)
	IssueCredentialTime(value time.Duration)
}

// Config holds the collaborators of the credential Service.
type Config struct {
	AccessTokens accessTokenVerifier
	Proofs       proofVerifier
	Offers       offerStore
	Documents    documentStore
	Registry     *credentialapi.Registry
	Validator    documentValidator
	StatusList   statusListClient
	Credentials  credentialStore
	Metrics      metricsProvider
	Now          func() time.Time
}

// Service issues credentials against redeemed credential offers.
type Service struct {
	accessTokens accessTokenVerifier
	proofs       proofVerifier
	offers       offerStore
	documents    documentStore
	registry     *credentialapi.Registry
	validator    documentValidator
	statusList   statusListClient
	credentials  credentialStore
	metrics      metricsProvider
	expiry       *credentialapi.ExpiryCalculator
	now          func() time.Time
}

// NewService returns a new credential Service.
func NewService(cfg *Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		accessTokens: cfg.AccessTokens,
		proofs:       cfg.Proofs,
		offers:       cfg.Offers,
		documents:    cfg.Documents,
		registry:     cfg.Registry,
		validator:    cfg.Validator,
		statusList:   cfg.StatusList,
		credentials:  cfg.Credentials,
		metrics:      cfg.Metrics,
		expiry:       credentialapi.NewExpiryCalculator(now),
		now:          now,
	}
}

// IssueCredential verifies the access token and proof of req, redeems the credential offer they
// point to and returns the credential built from the offered document.
func (s *Service) IssueCredential(ctx context.Context, req *IssueRequest) (*IssueResponse, error) {
	start := s.now()

	claims, err := s.accessTokens.Verify(ctx, req.AccessToken)
	if err != nil {
		return nil, err
	}

	proof, err := s.proofs.Verify(req.ProofJWT)
	if err != nil {
		return nil, err
	}

	if proof.Nonce != claims.Nonce {
		return nil, ErrNonceMismatch
	}

	offer, err := s.redeemableOffer(ctx, claims)
	if err != nil {
		return nil, err
	}

	doc, err := s.documents.GetDocument(ctx, offer.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: get document: %w", ErrCredentialService, err)
	}

	builder, vcType, err := s.registry.Resolve(doc.VCType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialService, err)
	}

	if err = s.validator.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialService, err)
	}

	if err = s.offers.Delete(ctx, claims.CredentialIdentifier); err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, fmt.Errorf("%w: delete credential offer: %w", ErrCredentialService, err)
	}

	expiry, err := s.expiry.Calculate(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialService, err)
	}

	var status *credentialapi.StatusListEntry

	if vcType.Format() == credentialapi.FormatMsoMdoc {
		status, err = s.statusList.GetIndex(ctx, expiry)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCredentialService, err)
		}
	}

	issued, err := builder.Build(ctx, &credentialapi.BuildRequest{
		Document: doc,
		Proof: &credentialapi.Proof{
			DidKey:    proof.DidKey,
			PublicKey: proof.PublicKey,
		},
		Status: status,
		Expiry: expiry,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: build %s: %w", ErrCredentialService, vcType, err)
	}

	stored := &StoredCredential{
		CredentialIdentifier: claims.CredentialIdentifier,
		NotificationID:       uuid.NewString(),
		WalletSubjectID:      claims.WalletSubjectID,
		DocumentID:           doc.DocumentID,
		VCType:               vcType.String(),
		TimeToLive:           expiry.Unix(),
	}

	if status != nil {
		stored.StatusListIndex = lo.ToPtr(status.Idx)
		stored.StatusListURI = lo.ToPtr(status.URI)
	}

	if err = s.credentials.Create(ctx, stored); err != nil {
		return nil, fmt.Errorf("%w: store credential: %w", ErrCredentialService, err)
	}

	logger.Infoc(ctx, "credential issued",
		logfields.WithCredentialID(stored.CredentialIdentifier),
		logfields.WithDocumentID(doc.DocumentID),
		logfields.WithVCType(vcType.String()),
		logfields.WithNotificationID(stored.NotificationID),
	)

	if s.metrics != nil {
		s.metrics.CredentialIssued(vcType.String())
		s.metrics.IssueCredentialTime(s.now().Sub(start))
	}

	return &IssueResponse{
		Credential:     issued,
		NotificationID: stored.NotificationID,
	}, nil
}

func (s *Service) redeemableOffer(
	ctx context.Context,
	claims *authorization.AccessTokenClaims,
) (*CredentialOffer, error) {
	offer, err := s.offers.Get(ctx, claims.CredentialIdentifier)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, fmt.Errorf("%w: get credential offer: %w", ErrCredentialService, err)
	}

	if s.now().After(offer.Expiry) {
		logger.Debugc(ctx, "credential offer expired",
			logfields.WithCredentialID(claims.CredentialIdentifier), log.WithError(ErrOfferExpired))

		return nil, ErrOfferExpired
	}

	if offer.WalletSubjectID != claims.WalletSubjectID {
		return nil, ErrOfferSubjectMismatch
	}

	return offer, nil
}
