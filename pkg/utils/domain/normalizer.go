package domain

import (
	"time"

	"github.com/tidwall/gjson"
	"github.com/vit0-9/whois_api/models"
)

// Sections of a whoisxmlapi document. Fields are read from the record first
// and from the registry data second.
const (
	primarySection   = "WhoisRecord"
	secondarySection = "WhoisRecord.registryData"
)

var sections = []string{primarySection, secondarySection}

// inSections builds one accessor per section for the same relative path.
func inSections[T any](doc gjson.Result, path string, read func(gjson.Result, string) Source[T]) []Source[T] {
	sources := make([]Source[T], 0, len(sections))
	for _, section := range sections {
		sources = append(sources, read(doc, section+"."+path))
	}
	return sources
}

// ExtractDomainInfo builds the domain view of a provider document.
func ExtractDomainInfo(doc gjson.Result) models.DomainInfo {
	return ExtractDomainInfoAt(doc, time.Now())
}

// ExtractDomainInfoAt is ExtractDomainInfo with an explicit reference time for
// the age estimate.
func ExtractDomainInfoAt(doc gjson.Result, now time.Time) models.DomainInfo {
	created := FirstPresent("", inSections(doc, "createdDate", field)...)
	expires := FirstPresent("", inSections(doc, "expiresDate", field)...)
	nameServers := FirstPresent(gjson.Result{}, inSections(doc, "nameServers.hostNames", list)...)

	return models.DomainInfo{
		DomainName:         FirstPresent(Unknown, inSections(doc, "domainName", field)...),
		Registrar:          FirstPresent(Unknown, inSections(doc, "registrarName", field)...),
		RegistrationDate:   FormatDate(created),
		ExpirationDate:     FormatDate(expires),
		EstimatedDomainAge: EstimateAgeAt(created, now),
		Hostnames:          FormatHostnames(nameServers),
	}
}

// ExtractContactInfo builds the contact view of a provider document.
func ExtractContactInfo(doc gjson.Result) models.ContactInfo {
	registrant := FirstPresent(gjson.Result{}, inSections(doc, "registrant", object)...)
	technical := FirstPresent(gjson.Result{}, inSections(doc, "technicalContact", object)...)
	administrative := FirstPresent(gjson.Result{}, inSections(doc, "administrativeContact", object)...)

	return models.ContactInfo{
		RegistrantName: FirstPresent(NotAvailable,
			field(registrant, "organization"),
		),
		TechnicalContactName: FirstPresent(NotAvailable,
			field(technical, "name"),
			field(technical, "organization"),
		),
		AdministrativeContactName: FirstPresent(NotAvailable,
			field(administrative, "organization"),
		),
		ContactEmail: FirstPresent(NotAvailable,
			field(registrant, "email"),
			field(technical, "email"),
			field(administrative, "email"),
			field(doc, primarySection+".contactEmail"),
		),
	}
}
