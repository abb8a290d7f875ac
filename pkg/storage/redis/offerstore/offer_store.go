/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offerstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/trustbloc/credential-issuer/pkg/service/credential"
	"github.com/trustbloc/credential-issuer/pkg/storage/redis"
)

const keyPrefix = "credentialoffer"

// Store keeps credential offers in Redis, keyed by credential identifier.
type Store struct {
	ttl         time.Duration
	redisClient *redis.Client
}

// New creates Store. Offers are evicted by Redis ttlSec seconds after they are saved.
func New(redisClient *redis.Client, ttlSec int32) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         time.Duration(ttlSec) * time.Second,
	}
}

func (s *Store) Save(ctx context.Context, offer *credential.CredentialOffer) error {
	doc := &redisDocument{
		ExpireAt: time.Now().UTC().Add(s.ttl),
		Offer:    offer,
	}

	if err := s.redisClient.API().Set(ctx, resolveRedisKey(offer.CredentialIdentifier), doc, s.ttl).Err(); err != nil {
		return fmt.Errorf("credential offer save: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, credentialIdentifier string) (*credential.CredentialOffer, error) {
	var doc redisDocument

	err := s.redisClient.API().Get(ctx, resolveRedisKey(credentialIdentifier)).Scan(&doc)
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, credential.ErrDataNotFound
		}

		return nil, fmt.Errorf("credential offer get: %w", err)
	}

	if doc.Offer == nil || doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, credential.ErrDataNotFound
	}

	return doc.Offer, nil
}

// Delete removes the offer. Of concurrent callers only the one whose DEL removed the key succeeds,
// the others get credential.ErrDataNotFound.
func (s *Store) Delete(ctx context.Context, credentialIdentifier string) error {
	n, err := s.redisClient.API().Del(ctx, resolveRedisKey(credentialIdentifier)).Result()
	if err != nil {
		return fmt.Errorf("credential offer delete: %w", err)
	}

	if n != 1 {
		return credential.ErrDataNotFound
	}

	return nil
}

func resolveRedisKey(id string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, id)
}
