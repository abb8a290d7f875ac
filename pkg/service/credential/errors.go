/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"errors"
	"fmt"
)

var (
	ErrDataNotFound = errors.New("data not found")

	ErrNonceMismatch = errors.New("nonce in proof JWT does not match c_nonce in access token")

	ErrCredentialOffer      = errors.New("credential offer error")
	ErrOfferNotFound        = fmt.Errorf("%w: credential offer not found", ErrCredentialOffer)
	ErrOfferExpired         = fmt.Errorf("%w: credential offer has expired", ErrCredentialOffer)
	ErrOfferSubjectMismatch = fmt.Errorf("%w: wallet subject does not match credential offer", ErrCredentialOffer)
	ErrCredentialService    = errors.New("credential service error")
)
