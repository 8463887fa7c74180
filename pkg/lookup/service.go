// Package lookup validates WHOIS lookup requests, queries the provider and
// normalizes the result into display records.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vit0-9/whois_api/models"
	"github.com/vit0-9/whois_api/pkg/utils/domain"
	"github.com/vit0-9/whois_api/pkg/whoisxml"
)

// RecordType selects the view of a WHOIS record.
type RecordType string

const (
	RecordTypeDomain  RecordType = "domain"
	RecordTypeContact RecordType = "contact"
)

// ParseRecordType accepts only "domain" and "contact".
func ParseRecordType(s string) (RecordType, bool) {
	switch RecordType(s) {
	case RecordTypeDomain, RecordTypeContact:
		return RecordType(s), true
	default:
		return "", false
	}
}

// Provider fetches the raw WHOIS document for a domain.
type Provider interface {
	Fetch(ctx context.Context, domain string) (gjson.Result, error)
}

// Observer is notified about each provider call. May be nil.
type Observer interface {
	ObserveUpstream(outcome string, elapsed time.Duration)
}

// Service performs lookups against a Provider.
type Service struct {
	provider   Provider
	configured bool
	observer   Observer
	now        func() time.Time
}

// NewService creates a Service. apiKeyConfigured reports whether the provider
// has a credential; when false every valid lookup fails with a configuration
// error before the provider is called.
func NewService(provider Provider, apiKeyConfigured bool) *Service {
	return &Service{
		provider:   provider,
		configured: apiKeyConfigured,
		now:        time.Now,
	}
}

// WithObserver attaches an observer for upstream calls.
func (s *Service) WithObserver(o Observer) *Service {
	s.observer = o
	return s
}

const (
	msgParamsRequired = "Domain and type parameters are required"
	msgInvalidType    = `Type must be either "domain" or "contact"`
	msgDomainRequired = "Domain parameter is required"
	msgNotConfigured  = "WHOIS API key is not configured"
	msgUnreachable    = "Unable to reach the WHOIS service. Please try again later."
)

// Lookup validates the parameters and returns a models.DomainInfo or
// models.ContactInfo. Errors are always *Error.
func (s *Service) Lookup(ctx context.Context, name, recordType string) (any, error) {
	if name == "" || recordType == "" {
		return nil, newError(KindValidation, msgParamsRequired, nil)
	}
	rt, ok := ParseRecordType(recordType)
	if !ok {
		return nil, newError(KindValidation, msgInvalidType, nil)
	}

	doc, err := s.fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	if rt == RecordTypeContact {
		return domain.ExtractContactInfo(doc), nil
	}
	return domain.ExtractDomainInfoAt(doc, s.now()), nil
}

// LookupFull returns both views of one provider document.
func (s *Service) LookupFull(ctx context.Context, name string) (*models.FullWhoisInfo, error) {
	if name == "" {
		return nil, newError(KindValidation, msgDomainRequired, nil)
	}

	doc, err := s.fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	return &models.FullWhoisInfo{
		DomainInfo:  domain.ExtractDomainInfoAt(doc, s.now()),
		ContactInfo: domain.ExtractContactInfo(doc),
	}, nil
}

func (s *Service) fetch(ctx context.Context, name string) (gjson.Result, error) {
	canonical, err := domain.Canonicalize(name)
	if err != nil {
		return gjson.Result{}, newError(KindValidation, fmt.Sprintf("Invalid domain name: %q", name), err)
	}

	if !s.configured {
		return gjson.Result{}, newError(KindConfiguration, msgNotConfigured, nil)
	}

	start := s.now()
	doc, err := s.provider.Fetch(ctx, canonical)
	if err != nil {
		lerr := translate(err)
		s.observe(lerr.Kind.String(), start)
		return gjson.Result{}, lerr
	}

	if msg, ok := whoisxml.ApplicationError(doc); ok {
		s.observe(KindUpstreamApplication.String(), start)
		return gjson.Result{}, newError(KindUpstreamApplication, msg, nil)
	}

	s.observe("ok", start)
	return doc, nil
}

func (s *Service) observe(outcome string, start time.Time) {
	if s.observer != nil {
		s.observer.ObserveUpstream(outcome, s.now().Sub(start))
	}
}

// translate maps provider errors to the lookup taxonomy.
func translate(err error) *Error {
	var statusErr *whoisxml.StatusError
	var netErr *whoisxml.NetworkError

	switch {
	case errors.Is(err, whoisxml.ErrMissingAPIKey):
		return newError(KindConfiguration, msgNotConfigured, err)
	case errors.As(err, &statusErr):
		msg := statusErr.Message
		if msg == "" {
			msg = fmt.Sprintf("WHOIS service responded with status %d", statusErr.StatusCode)
		}
		return &Error{Kind: KindUpstreamTransport, StatusCode: statusErr.StatusCode, Message: msg, Err: err}
	case errors.As(err, &netErr):
		return newError(KindNetwork, msgUnreachable, err)
	default:
		return AsError(err)
	}
}
