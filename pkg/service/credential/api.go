/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"time"
)

// CredentialOffer is the cached offer a wallet redeems for one credential.
type CredentialOffer struct {
	CredentialIdentifier string    `json:"credentialIdentifier"`
	ItemID               string    `json:"itemId"`
	WalletSubjectID      string    `json:"walletSubjectId"`
	Expiry               time.Time `json:"expiry"`
}

// StoredCredential is the record kept for every issued credential.
type StoredCredential struct {
	CredentialIdentifier string  `json:"credentialIdentifier" bson:"_id"`
	NotificationID       string  `json:"notificationId" bson:"notificationId"`
	WalletSubjectID      string  `json:"walletSubjectId" bson:"walletSubjectId"`
	DocumentID           string  `json:"documentId" bson:"documentId"`
	VCType               string  `json:"vcType" bson:"vcType"`
	StatusListIndex      *int    `json:"statusListIndex,omitempty" bson:"statusListIndex,omitempty"`
	StatusListURI        *string `json:"statusListUri,omitempty" bson:"statusListUri,omitempty"`
	// TimeToLive is the unix time after which the record may be dropped.
	TimeToLive int64 `json:"timeToLive" bson:"timeToLive"`
}

// IssueRequest is a wallet credential request.
type IssueRequest struct {
	AccessToken string
	ProofJWT    string
}

// IssueResponse carries the issued credential.
type IssueResponse struct {
	Credential     string `json:"credential"`
	NotificationID string `json:"notification_id"`
}
