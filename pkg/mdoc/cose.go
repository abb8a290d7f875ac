/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mdoc

import (
	"crypto/rand"
	"crypto/x509"
	"fmt"

	"github.com/veraison/go-cose"

	"github.com/trustbloc/credential-issuer/pkg/mdoc/cborutil"
)

// SignMSO embeds the MSO as the payload of a COSE_Sign1 signed by signer. The document signing
// certificate goes into the unprotected x5chain header. The result is the untagged COSE_Sign1.
func SignMSO(mso *MobileSecurityObject, signer cose.Signer, certificate *x509.Certificate) ([]byte, error) {
	if certificate == nil || len(certificate.Raw) == 0 {
		return nil, fmt.Errorf("%w: missing DER encoding", ErrCertificate)
	}

	if signer.Algorithm() != cose.AlgorithmES256 {
		return nil, fmt.Errorf("%w: unsupported algorithm %s", ErrSigning, signer.Algorithm())
	}

	embedded, err := cborutil.Embed(mso)
	if err != nil {
		return nil, fmt.Errorf("%w: encode mso: %w", ErrMdocBuild, err)
	}

	payload, err := cborutil.Marshal(embedded)
	if err != nil {
		return nil, fmt.Errorf("%w: embed mso: %w", ErrMdocBuild, err)
	}

	msg := cose.UntaggedSign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelAlgorithm: cose.AlgorithmES256,
			},
			Unprotected: cose.UnprotectedHeader{
				cose.HeaderLabelX5Chain: certificate.Raw,
			},
		},
		Payload: payload,
	}

	if err = msg.Sign(rand.Reader, nil, signer); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	out, err := msg.MarshalCBOR()
	if err != nil {
		return nil, fmt.Errorf("%w: encode cose_sign1: %w", ErrMdocBuild, err)
	}

	return out, nil
}
