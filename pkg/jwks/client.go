/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwks fetches the authorization server signing keys and caches them by kid.
package jwks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/go-jose/go-jose/v3"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
)

var logger = log.New("jwks-client")

// ErrKeyNotFound is returned when the key set has no key with the requested kid.
var ErrKeyNotFound = errors.New("jwk not found")

const (
	// DefaultCacheTTL is how long a fetched key is served from the cache.
	DefaultCacheTTL = 5 * time.Minute

	cacheNumCounters = 1000
	cacheMaxCost     = 100
	cacheBufferItems = 64
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config defines configuration for Client.
type Config struct {
	JWKSURL    string
	HTTPClient httpClient
	CacheTTL   time.Duration
}

// Client resolves JWKs by kid. It is safe for concurrent use.
type Client struct {
	jwksURL    string
	httpClient httpClient
	cacheTTL   time.Duration
	cache      *ristretto.Cache
}

// New returns a Client.
func New(cfg *Config) (*Client, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cacheNumCounters,
		MaxCost:     cacheMaxCost,
		BufferItems: cacheBufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("create jwks cache: %w", err)
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Client{
		jwksURL:    cfg.JWKSURL,
		httpClient: cfg.HTTPClient,
		cacheTTL:   ttl,
		cache:      cache,
	}, nil
}

// GetKey returns the key identified by kid, fetching the key set on a cache miss.
func (c *Client) GetKey(ctx context.Context, kid string) (*jose.JSONWebKey, error) {
	if v, ok := c.cache.Get(kid); ok {
		if key, isKey := v.(*jose.JSONWebKey); isKey {
			return key, nil
		}
	}

	set, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	for i := range set.Keys {
		key := set.Keys[i]
		if key.KeyID == "" {
			continue
		}

		c.cache.SetWithTTL(key.KeyID, &key, 1, c.cacheTTL)
	}

	c.cache.Wait()

	keys := set.Key(kid)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: kid %s", ErrKeyNotFound, kid)
	}

	return &keys[0], nil
}

// Close stops the cache goroutines.
func (c *Client) Close() {
	c.cache.Close()
}

func (c *Client) fetch(ctx context.Context) (*jose.JSONWebKeySet, error) {
	logger.Debugc(ctx, "Fetching JWKS", log.WithURL(c.jwksURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.jwksURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)

		logger.Warnc(ctx, "JWKS request failed", log.WithURL(c.jwksURL), log.WithHTTPStatus(resp.StatusCode),
			logfields.WithAdditionalMessage(string(b)))

		return nil, fmt.Errorf("status code: %d, msg: %s", resp.StatusCode, string(b))
	}

	var set jose.JSONWebKeySet

	if err = json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("decode jwks: %w", err)
	}

	return &set, nil
}
