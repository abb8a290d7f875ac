/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination client_mocks_test.go -self_package mocks -package statuslist_test -source=client.go -mock_names signingService=MockSigningService

// Package statuslist is the client of the status list service that allocates and revokes credential
// status entries.
package statuslist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	"github.com/trustbloc/credential-issuer/pkg/credential"
	"github.com/trustbloc/credential-issuer/pkg/kms/aws"
	"github.com/trustbloc/credential-issuer/pkg/kms/signer"
)

var logger = log.New("status-list-client")

// ErrStatusList is returned when the status list service cannot serve a request.
var ErrStatusList = errors.New("status list error")

const (
	getIndexEndpoint = "/get-index"
	revokeEndpoint   = "/revoke"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type signingService interface {
	Sign(ctx context.Context, keyID string, digest []byte) ([]byte, error)
}

// Config configures the status list Client.
type Config struct {
	URL          string
	ClientID     string
	SigningKeyID string
	KMS          signingService
	HTTPClient   httpClient
	Now          func() time.Time
}

// Client calls the status list service with requests signed by the issuer key.
type Client struct {
	url          string
	clientID     string
	signingKeyID string
	kid          string
	kms          signingService
	httpClient   httpClient
	now          func() time.Time
}

// RevokeResponse is the status list reply to a revocation.
type RevokeResponse struct {
	Message   string `json:"message"`
	RevokedAt int64  `json:"revokedAt"`
}

type getIndexClaims struct {
	StatusExpiry int64 `json:"statusExpiry"`
}

type revokeClaims struct {
	URI string `json:"uri"`
	Idx int    `json:"idx"`
}

// New returns a status list Client.
func New(cfg *Config) *Client {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		url:          strings.TrimSuffix(cfg.URL, "/"),
		clientID:     cfg.ClientID,
		signingKeyID: cfg.SigningKeyID,
		kid:          aws.HashKeyID(cfg.SigningKeyID),
		kms:          cfg.KMS,
		httpClient:   client,
		now:          now,
	}
}

// GetIndex allocates a status list entry for a credential expiring at expiry.
func (c *Client) GetIndex(ctx context.Context, expiry time.Time) (*credential.StatusListEntry, error) {
	token, err := c.requestToken(ctx, &getIndexClaims{StatusExpiry: expiry.Unix()})
	if err != nil {
		return nil, err
	}

	var entry credential.StatusListEntry

	if err = c.post(ctx, getIndexEndpoint, token, http.StatusOK, &entry); err != nil {
		return nil, fmt.Errorf("%w: get credential index: %w", ErrStatusList, err)
	}

	logger.Debugc(ctx, "status list entry allocated",
		logfields.WithStatusListIndex(entry.Idx), logfields.WithStatusListURI(entry.URI))

	return &entry, nil
}

// Revoke marks the entry at idx of the status list at uri as revoked.
func (c *Client) Revoke(ctx context.Context, entry *credential.StatusListEntry) (*RevokeResponse, error) {
	token, err := c.requestToken(ctx, &revokeClaims{URI: entry.URI, Idx: entry.Idx})
	if err != nil {
		return nil, err
	}

	var resp RevokeResponse

	if err = c.post(ctx, revokeEndpoint, token, http.StatusAccepted, &resp); err != nil {
		return nil, fmt.Errorf("%w: revoke credential: %w", ErrStatusList, err)
	}

	logger.Infoc(ctx, "credential revoked in status list",
		logfields.WithStatusListIndex(entry.Idx), logfields.WithStatusListURI(entry.URI))

	return &resp, nil
}

func (c *Client) requestToken(ctx context.Context, claims interface{}) (string, error) {
	base := jwt.Claims{
		Issuer:   c.clientID,
		IssuedAt: jwt.NewNumericDate(c.now()),
		ID:       uuid.NewString(),
	}

	token, err := signer.SignJWT(ctx, c.kms, c.signingKeyID, c.kid, base, claims)
	if err != nil {
		return "", fmt.Errorf("%w: sign status list request token: %w", ErrStatusList, err)
	}

	return token, nil
}

func (c *Client) post(ctx context.Context, endpoint, token string, expectedStatus int, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+endpoint, bytes.NewBufferString(token))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != expectedStatus {
		b, _ := io.ReadAll(resp.Body)

		logger.Errorc(ctx, "status list request failed",
			log.WithURL(req.URL.String()), log.WithHTTPStatus(resp.StatusCode))

		return fmt.Errorf("status code: %d, msg: %s", resp.StatusCode, string(b))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
