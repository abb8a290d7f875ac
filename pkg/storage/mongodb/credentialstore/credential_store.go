/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/credential-issuer/pkg/service/credential"
	"github.com/trustbloc/credential-issuer/pkg/storage/mongodb"
)

const (
	collectionName      = "stored_credentials"
	documentIDFieldName = "documentId"
	expireAtFieldName   = "expireAt"
)

type mongoDocument struct {
	CredentialIdentifier string    `bson:"_id"`
	NotificationID       string    `bson:"notificationId"`
	WalletSubjectID      string    `bson:"walletSubjectId"`
	DocumentID           string    `bson:"documentId"`
	VCType               string    `bson:"vcType"`
	StatusListIndex      *int      `bson:"statusListIndex,omitempty"`
	StatusListURI        *string   `bson:"statusListUri,omitempty"`
	ExpireAt             time.Time `bson:"expireAt"`
}

// Store keeps issued credential records in MongoDB. Records expire with the credential.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates Store and its indexes.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("stored credentials migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: documentIDFieldName, Value: 1}},
		},
		{
			Keys:    bson.D{{Key: expireAtFieldName, Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})

	return err
}

func (s *Store) Create(ctx context.Context, cred *credential.StoredCredential) error {
	_, err := s.collection().InsertOne(ctx, toMongoDocument(cred))
	if err != nil {
		return fmt.Errorf("insert stored credential: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, credentialIdentifier string) (*credential.StoredCredential, error) {
	var doc mongoDocument

	err := s.collection().FindOne(ctx, bson.M{"_id": credentialIdentifier}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, credential.ErrDataNotFound
		}

		return nil, fmt.Errorf("find stored credential: %w", err)
	}

	return fromMongoDocument(&doc), nil
}

func (s *Store) ListByDocumentID(ctx context.Context, documentID string) ([]*credential.StoredCredential, error) {
	cursor, err := s.collection().Find(ctx, bson.D{{Key: documentIDFieldName, Value: documentID}})
	if err != nil {
		return nil, fmt.Errorf("find stored credentials: %w", err)
	}

	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []mongoDocument

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode stored credentials: %w", err)
	}

	result := make([]*credential.StoredCredential, 0, len(docs))
	for i := range docs {
		result = append(result, fromMongoDocument(&docs[i]))
	}

	return result, nil
}

func (s *Store) Delete(ctx context.Context, credentialIdentifier string) error {
	res, err := s.collection().DeleteOne(ctx, bson.M{"_id": credentialIdentifier})
	if err != nil {
		return fmt.Errorf("delete stored credential: %w", err)
	}

	if res.DeletedCount == 0 {
		return credential.ErrDataNotFound
	}

	return nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(collectionName)
}

func toMongoDocument(c *credential.StoredCredential) *mongoDocument {
	return &mongoDocument{
		CredentialIdentifier: c.CredentialIdentifier,
		NotificationID:       c.NotificationID,
		WalletSubjectID:      c.WalletSubjectID,
		DocumentID:           c.DocumentID,
		VCType:               c.VCType,
		StatusListIndex:      c.StatusListIndex,
		StatusListURI:        c.StatusListURI,
		ExpireAt:             time.Unix(c.TimeToLive, 0).UTC(),
	}
}

func fromMongoDocument(d *mongoDocument) *credential.StoredCredential {
	return &credential.StoredCredential{
		CredentialIdentifier: d.CredentialIdentifier,
		NotificationID:       d.NotificationID,
		WalletSubjectID:      d.WalletSubjectID,
		DocumentID:           d.DocumentID,
		VCType:               d.VCType,
		StatusListIndex:      d.StatusListIndex,
		StatusListURI:        d.StatusListURI,
		TimeToLive:           d.ExpireAt.Unix(),
	}
}
