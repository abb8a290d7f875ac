/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuer

import (
	"errors"
	"fmt"

	issuererr "github.com/trustbloc/credential-issuer/pkg/restapi/resterr/issuer"
)

// CredentialRequest is the body of POST /credential.
type CredentialRequest struct {
	Proof *Proof `json:"proof"`
}

type Proof struct {
	ProofType string `json:"proof_type"`
	JWT       string `json:"jwt"`
}

func (r *CredentialRequest) validate() error {
	if r.Proof == nil {
		return issuererr.NewInvalidCredentialRequestError(errors.New("proof is required")).UsePublicAPIResponse()
	}

	if r.Proof.ProofType != proofTypeJWT {
		return issuererr.NewInvalidProofError(
			fmt.Errorf("unsupported proof_type %q", r.Proof.ProofType)).UsePublicAPIResponse()
	}

	if r.Proof.JWT == "" {
		return issuererr.NewInvalidProofError(errors.New("proof jwt is required")).UsePublicAPIResponse()
	}

	return nil
}

// NotificationRequest is the body of POST /notification.
type NotificationRequest struct {
	NotificationID   string `json:"notification_id"`
	Event            string `json:"event"`
	EventDescription string `json:"event_description,omitempty"`
}

// RevokeRequest is the body of POST /revoke.
type RevokeRequest struct {
	DocumentID string `json:"document_id"`
}
