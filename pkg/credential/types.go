/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCredentialType is returned for a vc type outside the supported set.
var ErrUnsupportedCredentialType = errors.New("unsupported credential type")

// Type is a supported credential type.
type Type string

// Supported credential types.
const (
	TypeSocialSecurity       Type = "SocialSecurityCredential"
	TypeBasicDisclosure      Type = "BasicDisclosureCredential"
	TypeDigitalVeteranCard   Type = "DigitalVeteranCard"
	TypeMobileDrivingLicence Type = "org.iso.18013.5.1.mDL"
)

// Format is the credential encoding advertised in issuer metadata.
type Format string

const (
	FormatJWTVC   Format = "jwt_vc_json"
	FormatMsoMdoc Format = "mso_mdoc"
)

// AllTypes lists every supported type.
func AllTypes() []Type {
	return []Type{TypeSocialSecurity, TypeBasicDisclosure, TypeDigitalVeteranCard, TypeMobileDrivingLicence}
}

// ParseType maps a vc type string onto the closed set of supported types.
func ParseType(vcType string) (Type, error) {
	switch t := Type(vcType); t {
	case TypeSocialSecurity, TypeBasicDisclosure, TypeDigitalVeteranCard, TypeMobileDrivingLicence:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCredentialType, vcType)
	}
}

// Format returns the encoding used for t.
func (t Type) Format() Format {
	if t == TypeMobileDrivingLicence {
		return FormatMsoMdoc
	}

	return FormatJWTVC
}

func (t Type) String() string {
	return string(t)
}
