/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mdl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/pkg/credential"
	"github.com/trustbloc/credential-issuer/pkg/mdoc"
	"github.com/trustbloc/credential-issuer/pkg/mdoc/cborutil"
)

// Code is a restriction or condition attached to a driving privilege.
type Code struct {
	Code string `json:"code" cbor:"code"`
}

// DrivingPrivilege is one vehicle category the holder may drive. Optional members are omitted
// from the encoded map.
type DrivingPrivilege struct {
	VehicleCategoryCode string             `cbor:"vehicle_category_code"`
	IssueDate           *cborutil.FullDate `cbor:"issue_date,omitempty" copier:"-"`
	ExpiryDate          *cborutil.FullDate `cbor:"expiry_date,omitempty" copier:"-"`
	Codes               []Code             `cbor:"codes,omitempty"`
}

type privilegeData struct {
	VehicleCategoryCode string `json:"vehicle_category_code"`
	IssueDate           string `json:"issue_date"`
	ExpiryDate          string `json:"expiry_date"`
	Codes               []Code `json:"codes"`
}

type licenceData struct {
	FamilyName                   string          `json:"family_name"`
	GivenName                    string          `json:"given_name"`
	Title                        string          `json:"title"`
	WelshLicence                 bool            `json:"welsh_licence"`
	Portrait                     string          `json:"portrait"`
	BirthDate                    string          `json:"birth_date"`
	BirthPlace                   string          `json:"birth_place"`
	IssueDate                    string          `json:"issue_date"`
	ExpiryDate                   string          `json:"expiry_date"`
	IssuingAuthority             string          `json:"issuing_authority"`
	IssuingCountry               string          `json:"issuing_country"`
	DocumentNumber               string          `json:"document_number"`
	ResidentAddress              []string        `json:"resident_address"`
	ResidentPostalCode           string          `json:"resident_postal_code"`
	ResidentCity                 string          `json:"resident_city"`
	DrivingPrivileges            []privilegeData `json:"driving_privileges"`
	UNDistinguishingSign         string          `json:"un_distinguishing_sign"`
	ProvisionalDrivingPrivileges []privilegeData `json:"provisional_driving_privileges"`
}

// Licence is a parsed driving licence document.
type Licence struct {
	FamilyName                   string
	GivenName                    string
	Title                        string
	WelshLicence                 bool
	Portrait                     string
	BirthDate                    cborutil.FullDate `copier:"-"`
	BirthPlace                   string
	IssueDate                    cborutil.FullDate `copier:"-"`
	ExpiryDate                   cborutil.FullDate `copier:"-"`
	IssuingAuthority             string
	IssuingCountry               string
	DocumentNumber               string
	ResidentAddress              string `copier:"-"`
	ResidentPostalCode           string
	ResidentCity                 string
	DrivingPrivileges            []DrivingPrivilege `copier:"-"`
	UNDistinguishingSign         string
	ProvisionalDrivingPrivileges []DrivingPrivilege `copier:"-"`
}

// ParseLicence reads a driving licence from document data. Dates use the dd-MM-yyyy layout.
func ParseLicence(data []byte) (*Licence, error) {
	var raw licenceData

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode driving licence: %w", credential.ErrInvalidDocument, err)
	}

	lic := &Licence{}

	if err := copier.Copy(lic, &raw); err != nil {
		return nil, fmt.Errorf("%w: copy driving licence: %w", credential.ErrInvalidDocument, err)
	}

	dates := []struct {
		value string
		dst   *cborutil.FullDate
	}{
		{raw.BirthDate, &lic.BirthDate},
		{raw.IssueDate, &lic.IssueDate},
		{raw.ExpiryDate, &lic.ExpiryDate},
	}

	for _, d := range dates {
		parsed, err := cborutil.ParseDocumentDate(d.value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", credential.ErrInvalidDocument, err)
		}

		*d.dst = parsed
	}

	lic.ResidentAddress = strings.Join(raw.ResidentAddress, ", ")

	var err error

	if lic.DrivingPrivileges, err = parsePrivileges(raw.DrivingPrivileges); err != nil {
		return nil, err
	}

	// Absent or null stays nil and is left out of the mdoc. An empty list is kept.
	if raw.ProvisionalDrivingPrivileges != nil {
		if lic.ProvisionalDrivingPrivileges, err = parsePrivileges(raw.ProvisionalDrivingPrivileges); err != nil {
			return nil, err
		}
	}

	return lic, nil
}

func parsePrivileges(raw []privilegeData) ([]DrivingPrivilege, error) {
	privileges := make([]DrivingPrivilege, 0, len(raw))

	for i := range raw {
		if raw[i].VehicleCategoryCode == "" {
			return nil, fmt.Errorf("%w: vehicle_category_code is required", credential.ErrInvalidDocument)
		}

		var p DrivingPrivilege

		if err := copier.CopyWithOption(&p, &raw[i], copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("%w: copy driving privilege: %w", credential.ErrInvalidDocument, err)
		}

		p.IssueDate = parseOptionalDate(raw[i].IssueDate)
		p.ExpiryDate = parseOptionalDate(raw[i].ExpiryDate)

		privileges = append(privileges, p)
	}

	return privileges, nil
}

// parseOptionalDate drops an unparseable privilege date instead of rejecting the licence.
func parseOptionalDate(s string) *cborutil.FullDate {
	if s == "" {
		return nil
	}

	d, err := cborutil.ParseDocumentDate(s)
	if err != nil {
		logger.Warn("Invalid driving privilege date", log.WithError(err))

		return nil
	}

	return &d
}

// Namespaces lays the licence out as the ISO group followed by the UK group.
func (l *Licence) Namespaces(seq *mdoc.DigestIDSequence) (mdoc.Namespaces, error) {
	b := mdoc.NewNamespaceBuilder(seq)

	b.Add(mdoc.ISONamespace, "family_name", l.FamilyName).
		Add(mdoc.ISONamespace, "given_name", l.GivenName).
		Add(mdoc.ISONamespace, "portrait", l.Portrait).
		Add(mdoc.ISONamespace, "birth_date", l.BirthDate).
		Add(mdoc.ISONamespace, "birth_place", l.BirthPlace).
		Add(mdoc.ISONamespace, "issue_date", l.IssueDate).
		Add(mdoc.ISONamespace, "expiry_date", l.ExpiryDate).
		Add(mdoc.ISONamespace, "issuing_authority", l.IssuingAuthority).
		Add(mdoc.ISONamespace, "issuing_country", l.IssuingCountry).
		Add(mdoc.ISONamespace, "document_number", l.DocumentNumber).
		Add(mdoc.ISONamespace, "resident_address", l.ResidentAddress).
		Add(mdoc.ISONamespace, "resident_postal_code", l.ResidentPostalCode).
		Add(mdoc.ISONamespace, "resident_city", l.ResidentCity).
		Add(mdoc.ISONamespace, "driving_privileges", l.DrivingPrivileges).
		Add(mdoc.ISONamespace, "un_distinguishing_sign", l.UNDistinguishingSign)

	b.Add(mdoc.UKNamespace, "title", l.Title).
		Add(mdoc.UKNamespace, "welsh_licence", l.WelshLicence).
		AddIfPresent(mdoc.UKNamespace, "provisional_driving_privileges", l.ProvisionalDrivingPrivileges)

	return b.Build()
}
