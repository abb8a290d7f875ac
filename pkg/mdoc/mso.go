/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mdoc

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"
	"time"

	"github.com/trustbloc/credential-issuer/pkg/mdoc/cborutil"
)

// DefaultValidity applies when the document carries no ttl.
const DefaultValidity = 365 * 24 * time.Hour

// ValidityInfoFactory builds ValidityInfo from an injectable clock.
type ValidityInfoFactory struct {
	now func() time.Time
}

// NewValidityInfoFactory returns a factory. A nil clock means time.Now.
func NewValidityInfoFactory(now func() time.Time) *ValidityInfoFactory {
	if now == nil {
		now = time.Now
	}

	return &ValidityInfoFactory{now: now}
}

// Build returns signed = validFrom = now and validUntil = now + ttl, or now + 365 days when ttl is zero.
func (f *ValidityInfoFactory) Build(ttl time.Duration) ValidityInfo {
	if ttl <= 0 {
		ttl = DefaultValidity
	}

	now := cborutil.NewDateTime(f.now())

	return ValidityInfo{
		Signed:     now,
		ValidFrom:  now,
		ValidUntil: cborutil.NewDateTime(now.Time().Add(ttl)),
	}
}

// NewCOSEKey converts a P-256 public key into an EC2 COSE_Key.
func NewCOSEKey(pub *ecdsa.PublicKey) (COSEKey, error) {
	if pub == nil || pub.Curve != elliptic.P256() {
		return COSEKey{}, fmt.Errorf("%w: device key must be EC P-256", ErrMdocBuild)
	}

	x := make([]byte, coordinateBytes)
	y := make([]byte, coordinateBytes)

	pub.X.FillBytes(x)
	pub.Y.FillBytes(y)

	return COSEKey{Kty: coseKeyTypeEC2, Crv: coseCurveP256, X: x, Y: y}, nil
}

// MobileSecurityObjectFactory assembles the MSO.
type MobileSecurityObjectFactory struct {
	validity *ValidityInfoFactory
}

// NewMobileSecurityObjectFactory returns a factory using validity for the validity info.
func NewMobileSecurityObjectFactory(validity *ValidityInfoFactory) *MobileSecurityObjectFactory {
	return &MobileSecurityObjectFactory{validity: validity}
}

// Build computes the value digests of namespaces and binds them to deviceKey.
func (f *MobileSecurityObjectFactory) Build(
	namespaces Namespaces,
	deviceKey *ecdsa.PublicKey,
	status *StatusListInfo,
	ttl time.Duration,
) (*MobileSecurityObject, error) {
	coseKey, err := NewCOSEKey(deviceKey)
	if err != nil {
		return nil, err
	}

	valueDigests, err := ComputeValueDigests(namespaces)
	if err != nil {
		return nil, err
	}

	mso := &MobileSecurityObject{
		Version:         MSOVersion,
		DigestAlgorithm: DigestAlgorithm,
		ValueDigests:    valueDigests,
		DeviceKeyInfo: DeviceKeyInfo{
			DeviceKey:         coseKey,
			KeyAuthorizations: &KeyAuthorizations{NameSpaces: namespaces.Names()},
		},
		DocType:      DocType,
		ValidityInfo: f.validity.Build(ttl),
	}

	if status != nil {
		mso.Status = &Status{StatusList: *status}
	}

	return mso, nil
}
