/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwtvc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/trustbloc/credential-issuer/pkg/credential"
)

// NamePart is one component of a person's name.
type NamePart struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Name is an ordered list of name parts.
type Name struct {
	NameParts []NamePart `json:"nameParts"`
}

// BirthDate holds a yyyy-mm-dd date.
type BirthDate struct {
	Value string `json:"value"`
}

type Address struct {
	SubBuildingName string `json:"subBuildingName,omitempty"`
	BuildingName    string `json:"buildingName,omitempty"`
	StreetName      string `json:"streetName,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

type SocialSecurityRecord struct {
	PersonalNumber string `json:"personalNumber"`
}

type BasicCheckRecord struct {
	CertificateNumber  string `json:"certificateNumber"`
	ApplicationNumber  string `json:"applicationNumber"`
	CertificateType    string `json:"certificateType"`
	Outcome            string `json:"outcome"`
	PoliceRecordsCheck string `json:"policeRecordsCheck"`
}

type VeteranCard struct {
	ExpiryDate    string `json:"expiryDate"`
	ServiceNumber string `json:"serviceNumber"`
	ServiceBranch string `json:"serviceBranch"`
	Photo         string `json:"photo"`
}

type SocialSecuritySubject struct {
	ID                   string                 `json:"id"`
	Name                 []Name                 `json:"name"`
	SocialSecurityRecord []SocialSecurityRecord `json:"socialSecurityRecord"`
}

type BasicCheckSubject struct {
	ID               string             `json:"id"`
	IssuanceDate     string             `json:"issuanceDate"`
	ExpirationDate   string             `json:"expirationDate"`
	Name             []Name             `json:"name"`
	BirthDate        []BirthDate        `json:"birthDate"`
	Address          []Address          `json:"address"`
	BasicCheckRecord []BasicCheckRecord `json:"basicCheckRecord"`
}

type VeteranCardSubject struct {
	ID          string        `json:"id"`
	Name        []Name        `json:"name"`
	BirthDate   []BirthDate   `json:"birthDate"`
	VeteranCard []VeteranCard `json:"veteranCard"`
}

type socialSecurityDocument struct {
	Title      string `json:"title"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Nino       string `json:"nino"`
}

type basicCheckDocument struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	BirthDay           string `json:"birth-day"`
	BirthMonth         string `json:"birth-month"`
	BirthYear          string `json:"birth-year"`
	IssuanceDay        string `json:"issuance-day"`
	IssuanceMonth      string `json:"issuance-month"`
	IssuanceYear       string `json:"issuance-year"`
	ExpirationDay      string `json:"expiration-day"`
	ExpirationMonth    string `json:"expiration-month"`
	ExpirationYear     string `json:"expiration-year"`
	SubBuildingName    string `json:"subBuildingName"`
	BuildingName       string `json:"buildingName"`
	StreetName         string `json:"streetName"`
	AddressLocality    string `json:"addressLocality"`
	AddressCountry     string `json:"addressCountry"`
	PostalCode         string `json:"postalCode"`
	CertificateNumber  string `json:"certificateNumber"`
	ApplicationNumber  string `json:"applicationNumber"`
	CertificateType    string `json:"certificateType"`
	Outcome            string `json:"outcome"`
	PoliceRecordsCheck string `json:"policeRecordsCheck"`
}

type veteranCardDocument struct {
	GivenName           string `json:"givenName"`
	FamilyName          string `json:"familyName"`
	DateOfBirthDay      string `json:"dateOfBirth-day"`
	DateOfBirthMonth    string `json:"dateOfBirth-month"`
	DateOfBirthYear     string `json:"dateOfBirth-year"`
	CardExpiryDateDay   string `json:"cardExpiryDate-day"`
	CardExpiryDateMonth string `json:"cardExpiryDate-month"`
	CardExpiryDateYear  string `json:"cardExpiryDate-year"`
	ServiceNumber       string `json:"serviceNumber"`
	ServiceBranch       string `json:"serviceBranch"`
	Photo               string `json:"photo"`
}

// subjectMapper turns document data into the credentialSubject of a credential type.
type subjectMapper func(data []byte, id string) (interface{}, error)

var subjectMappers = map[credential.Type]subjectMapper{
	credential.TypeSocialSecurity:     mapSocialSecurity,
	credential.TypeBasicDisclosure:    mapBasicCheck,
	credential.TypeDigitalVeteranCard: mapVeteranCard,
}

func mapSocialSecurity(data []byte, id string) (interface{}, error) {
	var doc socialSecurityDocument

	if err := decodeDocument(data, &doc); err != nil {
		return nil, err
	}

	return &SocialSecuritySubject{
		ID:                   id,
		Name:                 buildName(doc.Title, doc.GivenName, doc.FamilyName),
		SocialSecurityRecord: []SocialSecurityRecord{{PersonalNumber: doc.Nino}},
	}, nil
}

func mapBasicCheck(data []byte, id string) (interface{}, error) {
	var doc basicCheckDocument

	if err := decodeDocument(data, &doc); err != nil {
		return nil, err
	}

	return &BasicCheckSubject{
		ID:             id,
		IssuanceDate:   formatDate(doc.IssuanceYear, doc.IssuanceMonth, doc.IssuanceDay),
		ExpirationDate: formatDate(doc.ExpirationYear, doc.ExpirationMonth, doc.ExpirationDay),
		Name:           buildName("", doc.FirstName, doc.LastName),
		BirthDate:      []BirthDate{{Value: formatDate(doc.BirthYear, doc.BirthMonth, doc.BirthDay)}},
		Address: []Address{{
			SubBuildingName: doc.SubBuildingName,
			BuildingName:    doc.BuildingName,
			StreetName:      doc.StreetName,
			AddressLocality: doc.AddressLocality,
			PostalCode:      doc.PostalCode,
			AddressCountry:  doc.AddressCountry,
		}},
		BasicCheckRecord: []BasicCheckRecord{{
			CertificateNumber:  doc.CertificateNumber,
			ApplicationNumber:  doc.ApplicationNumber,
			CertificateType:    doc.CertificateType,
			Outcome:            doc.Outcome,
			PoliceRecordsCheck: doc.PoliceRecordsCheck,
		}},
	}, nil
}

func mapVeteranCard(data []byte, id string) (interface{}, error) {
	var doc veteranCardDocument

	if err := decodeDocument(data, &doc); err != nil {
		return nil, err
	}

	return &VeteranCardSubject{
		ID:        id,
		Name:      buildName("", doc.GivenName, doc.FamilyName),
		BirthDate: []BirthDate{{Value: formatDate(doc.DateOfBirthYear, doc.DateOfBirthMonth, doc.DateOfBirthDay)}},
		VeteranCard: []VeteranCard{{
			ExpiryDate:    formatDate(doc.CardExpiryDateYear, doc.CardExpiryDateMonth, doc.CardExpiryDateDay),
			ServiceNumber: doc.ServiceNumber,
			ServiceBranch: doc.ServiceBranch,
			Photo:         doc.Photo,
		}},
	}, nil
}

func decodeDocument(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", credential.ErrInvalidDocument, err)
	}

	return nil
}

// buildName splits given and family names on spaces. An empty title is left out.
func buildName(title, givenName, familyName string) []Name {
	var parts []NamePart

	if title != "" {
		parts = append(parts, NamePart{Value: title, Type: "Title"})
	}

	toParts := func(partType string) func(string, int) NamePart {
		return func(v string, _ int) NamePart { return NamePart{Value: v, Type: partType} }
	}

	parts = append(parts, lo.Map(strings.Fields(givenName), toParts("GivenName"))...)
	parts = append(parts, lo.Map(strings.Fields(familyName), toParts("FamilyName"))...)

	return []Name{{NameParts: parts}}
}

func formatDate(year, month, day string) string {
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}
