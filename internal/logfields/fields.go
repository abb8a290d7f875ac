/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAdditionalMessage = "additionalMessage"
	FieldCommand           = "command"
	FieldCredentialID      = "credentialIdentifier"
	FieldDocumentID        = "documentID"
	FieldEvent             = "event"
	FieldItemID            = "itemID"
	FieldKeyID             = "keyID"
	FieldNotificationEvent = "notificationEvent"
	FieldNotificationID    = "notificationID"
	FieldSleep             = "sleep"
	FieldStatusListIndex   = "statusListIndex"
	FieldStatusListURI     = "statusListURI"
	FieldUserLogLevel      = "userLogLevel"
	FieldVCType            = "vcType"
	FieldWalletSubjectID   = "walletSubjectID"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.Any(FieldAdditionalMessage, value)
}

// WithCommand sets the Command field.
func WithCommand(command string) zap.Field {
	return zap.String(FieldCommand, command)
}

// WithCredentialID sets the credential identifier (credential offer id) field.
func WithCredentialID(id string) zap.Field {
	return zap.String(FieldCredentialID, id)
}

// WithDocumentID sets the DocumentID field.
func WithDocumentID(documentID string) zap.Field {
	return zap.String(FieldDocumentID, documentID)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithItemID sets the ItemID field.
func WithItemID(itemID string) zap.Field {
	return zap.String(FieldItemID, itemID)
}

// WithKeyID sets the KeyID field.
func WithKeyID(keyID string) zap.Field {
	return zap.String(FieldKeyID, keyID)
}

// WithNotificationEvent sets the NotificationEvent field.
func WithNotificationEvent(event string) zap.Field {
	return zap.String(FieldNotificationEvent, event)
}

// WithNotificationID sets the NotificationID field.
func WithNotificationID(notificationID string) zap.Field {
	return zap.String(FieldNotificationID, notificationID)
}

// WithSleep sets the Sleep field.
func WithSleep(sleep time.Duration) zap.Field {
	return zap.Duration(FieldSleep, sleep)
}

// WithStatusListIndex sets the StatusListIndex field.
func WithStatusListIndex(idx int) zap.Field {
	return zap.Int(FieldStatusListIndex, idx)
}

// WithStatusListURI sets the StatusListURI field.
func WithStatusListURI(uri string) zap.Field {
	return zap.String(FieldStatusListURI, uri)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithVCType sets the VCType field.
func WithVCType(vcType string) zap.Field {
	return zap.String(FieldVCType, vcType)
}

// WithWalletSubjectID sets the WalletSubjectID field.
func WithWalletSubjectID(walletSubjectID string) zap.Field {
	return zap.String(FieldWalletSubjectID, walletSubjectID)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
