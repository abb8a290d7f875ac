/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"net/url"
	"strings"

	"github.com/samber/lo"

	credentialapi "github.com/trustbloc/credential-issuer/pkg/credential"
)

const (
	issuerNameEN = "GOV.UK Wallet Example Credential Issuer"
	issuerNameCY = "Cyhoeddwr Tystlythyrau Enghreifftiol Waled GOV.UK"

	signingAlgorithm = "ES256"
	// COSE algorithm identifier of ES256.
	coseES256 = -7
)

var displayNames = map[credentialapi.Type]string{
	credentialapi.TypeSocialSecurity:       "National Insurance number",
	credentialapi.TypeBasicDisclosure:      "Basic DBS check",
	credentialapi.TypeDigitalVeteranCard:   "HM Armed Forces Veteran Card",
	credentialapi.TypeMobileDrivingLicence: "Driving licence",
}

type Config struct {
	SelfURL            string
	AuthServerURL      string
	CredentialStoreURL string
	// LogoURL is optional.
	LogoURL string
}

// Metadata is the OpenID4VCI credential issuer metadata document.
type Metadata struct {
	CredentialIssuer                  string                              `json:"credential_issuer"`
	AuthorizationServers              []string                            `json:"authorization_servers"`
	CredentialEndpoint                string                              `json:"credential_endpoint"`
	NotificationEndpoint              string                              `json:"notification_endpoint"`
	MdocIacasURI                      string                              `json:"mdoc_iacas_uri"`
	Display                           []*Display                          `json:"display"`
	CredentialConfigurationsSupported map[string]*CredentialConfiguration `json:"credential_configurations_supported"`
}

type Display struct {
	Locale string `json:"locale"`
	Name   string `json:"name"`
	Logo   *Logo  `json:"logo,omitempty"`
}

type Logo struct {
	URI string `json:"uri"`
}

type CredentialDefinition struct {
	Type []string `json:"type"`
}

type ProofType struct {
	ProofSigningAlgValuesSupported []string `json:"proof_signing_alg_values_supported"`
}

type CredentialConfiguration struct {
	Format                               string                `json:"format"`
	Doctype                              *string               `json:"doctype,omitempty"`
	CredentialDefinition                 *CredentialDefinition `json:"credential_definition,omitempty"`
	CryptographicBindingMethodsSupported []string              `json:"cryptographic_binding_methods_supported"`
	CredentialSigningAlgValuesSupported  []interface{}         `json:"credential_signing_alg_values_supported"`
	ProofTypesSupported                  map[string]*ProofType `json:"proof_types_supported"`
	Display                              []*Display            `json:"display"`
	CredentialRefreshWebJourneyURL       string                `json:"credential_refresh_web_journey_url,omitempty"`
}

// Service serves the credential issuer metadata. The document is built once at construction.
type Service struct {
	metadata *Metadata
}

func NewService(cfg *Config) *Service {
	self := strings.TrimSuffix(cfg.SelfURL, "/")

	m := &Metadata{
		CredentialIssuer:                  self,
		AuthorizationServers:              []string{cfg.AuthServerURL},
		CredentialEndpoint:                self + "/credential",
		NotificationEndpoint:              self + "/notification",
		MdocIacasURI:                      self + "/iacas",
		Display:                           issuerDisplay(cfg.LogoURL),
		CredentialConfigurationsSupported: make(map[string]*CredentialConfiguration),
	}

	for _, t := range credentialapi.AllTypes() {
		m.CredentialConfigurationsSupported[t.String()] = credentialConfiguration(t, cfg.CredentialStoreURL)
	}

	return &Service{metadata: m}
}

// GetMetadata returns the issuer metadata.
func (s *Service) GetMetadata() *Metadata {
	return s.metadata
}

func issuerDisplay(logoURL string) []*Display {
	var logo *Logo
	if logoURL != "" {
		logo = &Logo{URI: logoURL}
	}

	return []*Display{
		{Locale: "en", Name: issuerNameEN, Logo: logo},
		{Locale: "cy", Name: issuerNameCY, Logo: logo},
	}
}

func credentialConfiguration(t credentialapi.Type, credentialStoreURL string) *CredentialConfiguration {
	conf := &CredentialConfiguration{
		Format: string(t.Format()),
		ProofTypesSupported: map[string]*ProofType{
			"jwt": {ProofSigningAlgValuesSupported: []string{signingAlgorithm}},
		},
		Display: []*Display{{Locale: "en", Name: displayNames[t]}},
	}

	if credentialStoreURL != "" {
		refreshURL, err := url.JoinPath(credentialStoreURL, "refresh", t.String())
		if err == nil {
			conf.CredentialRefreshWebJourneyURL = refreshURL
		}
	}

	if t.Format() == credentialapi.FormatMsoMdoc {
		conf.Doctype = lo.ToPtr(t.String())
		conf.CryptographicBindingMethodsSupported = []string{"cose_key"}
		conf.CredentialSigningAlgValuesSupported = []interface{}{coseES256}

		return conf
	}

	conf.CredentialDefinition = &CredentialDefinition{Type: []string{"VerifiableCredential", t.String()}}
	conf.CryptographicBindingMethodsSupported = []string{"did:key"}
	conf.CredentialSigningAlgValuesSupported = []interface{}{signingAlgorithm}

	return conf
}
