/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mdoc

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/trustbloc/credential-issuer/pkg/mdoc/cborutil"
)

const (
	// DocType is the ISO 18013-5 document type of a mobile driving licence.
	DocType = "org.iso.18013.5.1.mDL"
	// ISONamespace holds the ISO 18013-5 mDL data elements.
	ISONamespace = "org.iso.18013.5.1"
	// UKNamespace holds the UK specific data elements.
	UKNamespace = "org.iso.18013.5.1.GB"

	// MSOVersion is the mobile security object version.
	MSOVersion = "1.0"
	// DigestAlgorithm names the value digest algorithm.
	DigestAlgorithm = "SHA-256"
)

// COSE_Key parameters for an EC2 P-256 key.
const (
	coseKeyTypeEC2  = 2
	coseCurveP256   = 1
	coordinateBytes = 32
)

// IssuerSignedItem is one disclosed data element.
type IssuerSignedItem struct {
	DigestID          uint32      `cbor:"digestID"`
	Random            []byte      `cbor:"random"`
	ElementIdentifier string      `cbor:"elementIdentifier"`
	ElementValue      interface{} `cbor:"elementValue"`
}

// COSEKey is an EC2 COSE_Key.
type COSEKey struct {
	Kty int    `cbor:"1,keyasint"`
	Crv int    `cbor:"-1,keyasint"`
	X   []byte `cbor:"-2,keyasint"`
	Y   []byte `cbor:"-3,keyasint"`
}

// KeyAuthorizations lists the namespaces the device key may sign for.
type KeyAuthorizations struct {
	NameSpaces []string `cbor:"nameSpaces"`
}

// DeviceKeyInfo binds the mdoc to the holder's key.
type DeviceKeyInfo struct {
	DeviceKey         COSEKey            `cbor:"deviceKey"`
	KeyAuthorizations *KeyAuthorizations `cbor:"keyAuthorizations,omitempty"`
}

// ValidityInfo bounds the validity of the MSO.
type ValidityInfo struct {
	Signed     cborutil.DateTime `cbor:"signed"`
	ValidFrom  cborutil.DateTime `cbor:"validFrom"`
	ValidUntil cborutil.DateTime `cbor:"validUntil"`
}

// StatusListInfo locates the credential in a token status list.
type StatusListInfo struct {
	Idx int    `cbor:"idx" json:"idx"`
	URI string `cbor:"uri" json:"uri"`
}

// Status carries the revocation status reference.
type Status struct {
	StatusList StatusListInfo `cbor:"status_list"`
}

// DigestIDs maps digest ids to SHA-256 digests of the tag 24 embedded items.
type DigestIDs map[uint32][]byte

// ValueDigests maps namespaces to their digests.
type ValueDigests map[string]DigestIDs

// MarshalCBOR writes namespaces and digest ids in ascending order.
func (v ValueDigests) MarshalCBOR() ([]byte, error) {
	return cborutil.MarshalCanonical(map[string]DigestIDs(v))
}

// MobileSecurityObject is signed by the issuer and carries the value digests.
type MobileSecurityObject struct {
	Version         string        `cbor:"version"`
	DigestAlgorithm string        `cbor:"digestAlgorithm"`
	ValueDigests    ValueDigests  `cbor:"valueDigests"`
	DeviceKeyInfo   DeviceKeyInfo `cbor:"deviceKeyInfo"`
	DocType         string        `cbor:"docType"`
	ValidityInfo    ValidityInfo  `cbor:"validityInfo"`
	Status          *Status       `cbor:"status,omitempty"`
}

// IssuerNameSpaces maps namespaces to their tag 24 embedded items.
type IssuerNameSpaces map[string][]cborutil.EmbeddedCBOR

// MarshalCBOR writes namespaces in canonical order.
func (n IssuerNameSpaces) MarshalCBOR() ([]byte, error) {
	return cborutil.MarshalCanonical(map[string][]cborutil.EmbeddedCBOR(n))
}

// IssuerSigned is the issued credential: the disclosed items and the issuer signature.
type IssuerSigned struct {
	NameSpaces IssuerNameSpaces `cbor:"nameSpaces"`
	IssuerAuth cbor.RawMessage  `cbor:"issuerAuth"`
}
