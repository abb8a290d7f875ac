/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mdoc

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/veraison/go-cose"

	"github.com/trustbloc/credential-issuer/pkg/mdoc/cborutil"
)

// AssembleIssuerSigned encodes the namespaces and the issuer signature and returns
// the base64url (unpadded) IssuerSigned.
func AssembleIssuerSigned(namespaces Namespaces, issuerAuth []byte) (string, error) {
	b, err := cborutil.Marshal(IssuerSigned{
		NameSpaces: namespaces.IssuerNameSpaces(),
		IssuerAuth: issuerAuth,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode issuer signed: %w", ErrMdocBuild, err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// IssueRequest carries what is needed to sign already built namespaces.
type IssueRequest struct {
	Namespaces  Namespaces
	DeviceKey   *ecdsa.PublicKey
	Status      *StatusListInfo
	TTL         time.Duration
	Signer      cose.Signer
	Certificate *x509.Certificate
}

// Issuer runs the MSO, signature and assembly steps.
type Issuer struct {
	msoFactory *MobileSecurityObjectFactory
}

// NewIssuer returns an Issuer.
func NewIssuer(msoFactory *MobileSecurityObjectFactory) *Issuer {
	return &Issuer{msoFactory: msoFactory}
}

// Issue returns the base64url IssuerSigned credential.
func (i *Issuer) Issue(req *IssueRequest) (string, error) {
	mso, err := i.msoFactory.Build(req.Namespaces, req.DeviceKey, req.Status, req.TTL)
	if err != nil {
		return "", err
	}

	issuerAuth, err := SignMSO(mso, req.Signer, req.Certificate)
	if err != nil {
		return "", err
	}

	return AssembleIssuerSigned(req.Namespaces, issuerAuth)
}
