/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offerstore

import (
	"encoding/json"
	"time"

	"github.com/trustbloc/credential-issuer/pkg/service/credential"
)

type redisDocument struct {
	ExpireAt time.Time
	Offer    *credential.CredentialOffer
}

func (d *redisDocument) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}

func (d *redisDocument) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, d)
}
