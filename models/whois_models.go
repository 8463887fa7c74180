// File: models/whois_models.go
package models

// DomainInfo is the "domain" view of a WHOIS record. Every field is a display
// string; missing data is rendered as a sentinel, never omitted.
type DomainInfo struct {
	DomainName         string `json:"domainName" example:"example.com"`
	Registrar          string `json:"registrar" example:"RESERVED-Internet Assigned Numbers Authority"`
	RegistrationDate   string `json:"registrationDate" example:"Aug 14, 1995"`
	ExpirationDate     string `json:"expirationDate" example:"Aug 13, 2026"`
	EstimatedDomainAge string `json:"estimatedDomainAge" example:"30 years"`
	Hostnames          string `json:"hostnames" example:"a.iana-servers.net, b.i..."`
}

// ContactInfo is the "contact" view of a WHOIS record.
type ContactInfo struct {
	RegistrantName            string `json:"registrantName" example:"Internet Assigned Numbers Authority"`
	TechnicalContactName      string `json:"technicalContactName" example:"Not available"`
	AdministrativeContactName string `json:"administrativeContactName" example:"Not available"`
	ContactEmail              string `json:"contactEmail" example:"Not available"`
}

// FullWhoisInfo is the union of both views.
type FullWhoisInfo struct {
	DomainInfo
	ContactInfo
}
