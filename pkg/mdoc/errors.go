/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mdoc

import "errors"

var (
	// ErrMdocBuild is returned when an mdoc structure cannot be encoded.
	ErrMdocBuild = errors.New("mdoc build failed")
	// ErrSigning is returned when the issuer signature over the MSO cannot be produced.
	ErrSigning = errors.New("mdoc signing failed")
	// ErrCertificate is returned when the document signing certificate is unusable.
	ErrCertificate = errors.New("invalid document signing certificate")
)
