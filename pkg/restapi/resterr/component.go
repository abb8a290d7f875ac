/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

//nolint:gosec
const (
	CredentialSvcComponent      Component = "issuer.credential-service"
	NotificationSvcComponent    Component = "issuer.notification-service"
	RevokeSvcComponent          Component = "issuer.revoke-service"
	CredentialOfferSvcComponent Component = "issuer.credential-offer-service"
	DIDDocumentSvcComponent     Component = "issuer.did-document-service"
	IacasSvcComponent           Component = "issuer.iacas-service"
)
