/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination credential_offer_service_mocks_test.go -self_package mocks -package credentialoffer_test -source=credential_offer_service.go -mock_names signingService=MockSigningService,offerStore=MockOfferStore

package credentialoffer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	credentialapi "github.com/trustbloc/credential-issuer/pkg/credential"
	"github.com/trustbloc/credential-issuer/pkg/kms/aws"
	"github.com/trustbloc/credential-issuer/pkg/kms/signer"
	"github.com/trustbloc/credential-issuer/pkg/service/credential"
)

var logger = log.New("credential-offer-service")

const (
	PreAuthorizedCodeGrantType = "urn:ietf:params:oauth:grant-type:pre-authorized_code"
	defaultOfferURIPrefix      = "openid-credential-offer://?credential_offer="
)

var (
	ErrInvalidRequest = errors.New("invalid credential offer request")
	ErrCreateOffer    = errors.New("failed to create credential offer")
)

var (
	walletSubjectIDPattern = regexp.MustCompile(`^urn:fdc:wallet\.account\.gov\.uk:2024:[a-zA-Z0-9_-]{43}$`)
	documentIDPattern      = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,50}$`)
)

type signingService interface {
	Sign(ctx context.Context, keyID string, digest []byte) ([]byte, error)
}

type offerStore interface {
	Save(ctx context.Context, offer *credential.CredentialOffer) error
}

type Config struct {
	SelfURL       string
	AuthServerURL string
	ClientID      string
	// WalletDeepLinkURL, when set, replaces the openid-credential-offer scheme in returned URIs.
	WalletDeepLinkURL    string
	SigningKeyID         string
	KMS                  signingService
	Offers               offerStore
	OfferTTL             time.Duration
	PreAuthorizedCodeTTL time.Duration
	Now                  func() time.Time
}

// Request asks for a credential offer of CredentialType for the document ItemID held by WalletSubjectID.
type Request struct {
	WalletSubjectID string
	ItemID          string
	CredentialType  string
}

// Offer is the credential offer object handed to the wallet.
type Offer struct {
	CredentialIssuer           string                       `json:"credential_issuer"`
	CredentialConfigurationIDs []string                     `json:"credential_configuration_ids"`
	Grants                     map[string]map[string]string `json:"grants"`
}

type Response struct {
	CredentialOfferURI string `json:"credential_offer_uri"`
	Offer              *Offer `json:"-"`
}

type preAuthorizedCodeClaims struct {
	jwt.Claims

	ClientID              string   `json:"clientId"`
	CredentialIdentifiers []string `json:"credential_identifiers"`
}

type Service struct {
	cfg *Config
	kid string
	now func() time.Time
}

func NewService(cfg *Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		cfg: cfg,
		kid: aws.HashKeyID(cfg.SigningKeyID),
		now: now,
	}
}

// CreateOffer caches a new single use credential offer and returns the URI the wallet opens to redeem it.
func (s *Service) CreateOffer(ctx context.Context, req *Request) (*Response, error) {
	vcType, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	credentialIdentifier := uuid.NewString()
	now := s.now()

	code, err := s.preAuthorizedCode(ctx, credentialIdentifier, now)
	if err != nil {
		logger.Errorc(ctx, "failed to create pre-authorized code",
			logfields.WithWalletSubjectID(req.WalletSubjectID),
			logfields.WithItemID(req.ItemID),
			log.WithError(err),
		)

		return nil, fmt.Errorf("%w: %w", ErrCreateOffer, err)
	}

	err = s.cfg.Offers.Save(ctx, &credential.CredentialOffer{
		CredentialIdentifier: credentialIdentifier,
		ItemID:               req.ItemID,
		WalletSubjectID:      req.WalletSubjectID,
		Expiry:               now.Add(s.cfg.OfferTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: save offer: %w", ErrCreateOffer, err)
	}

	logger.Infoc(ctx, "credential offer saved",
		logfields.WithWalletSubjectID(req.WalletSubjectID),
		logfields.WithCredentialID(credentialIdentifier),
		logfields.WithItemID(req.ItemID),
		logfields.WithVCType(vcType.String()),
	)

	offer := &Offer{
		CredentialIssuer:           s.cfg.SelfURL,
		CredentialConfigurationIDs: []string{vcType.String()},
		Grants: map[string]map[string]string{
			PreAuthorizedCodeGrantType: {"pre-authorized_code": code},
		},
	}

	offerJSON, err := json.Marshal(offer)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal offer: %w", ErrCreateOffer, err)
	}

	return &Response{
		CredentialOfferURI: s.uriPrefix() + url.QueryEscape(string(offerJSON)),
		Offer:              offer,
	}, nil
}

func (s *Service) validate(req *Request) (credentialapi.Type, error) {
	if !walletSubjectIDPattern.MatchString(req.WalletSubjectID) {
		return "", fmt.Errorf("%w: walletSubjectId", ErrInvalidRequest)
	}

	if !documentIDPattern.MatchString(req.ItemID) {
		return "", fmt.Errorf("%w: documentId", ErrInvalidRequest)
	}

	vcType, err := credentialapi.ParseType(req.CredentialType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return vcType, nil
}

func (s *Service) preAuthorizedCode(ctx context.Context, credentialIdentifier string, now time.Time) (string, error) {
	claims := &preAuthorizedCodeClaims{
		Claims: jwt.Claims{
			Issuer:   s.cfg.SelfURL,
			Audience: jwt.Audience{s.cfg.AuthServerURL},
			IssuedAt: jwt.NewNumericDate(now),
			Expiry:   jwt.NewNumericDate(now.Add(s.cfg.PreAuthorizedCodeTTL)),
		},
		ClientID:              s.cfg.ClientID,
		CredentialIdentifiers: []string{credentialIdentifier},
	}

	return signer.SignJWT(ctx, s.cfg.KMS, s.cfg.SigningKeyID, s.kid, claims)
}

func (s *Service) uriPrefix() string {
	if s.cfg.WalletDeepLinkURL == "" {
		return defaultOfferURIPrefix
	}

	return strings.TrimSuffix(s.cfg.WalletDeepLinkURL, "/") + "/add?credential_offer="
}
