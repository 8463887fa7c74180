package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/whois_api/models"
	"github.com/vit0-9/whois_api/pkg/logger"
	"github.com/vit0-9/whois_api/pkg/lookup"
)

// Lookuper is the lookup core the handlers depend on.
type Lookuper interface {
	Lookup(ctx context.Context, name, recordType string) (any, error)
	LookupFull(ctx context.Context, name string) (*models.FullWhoisInfo, error)
}

// LookupRecorder receives one outcome per lookup request. May be nil.
type LookupRecorder interface {
	ObserveLookup(recordType, outcome string)
}

// WhoisHandlers serves the WHOIS lookup endpoints.
type WhoisHandlers struct {
	service  Lookuper
	log      *logger.Logger
	recorder LookupRecorder
}

func NewWhoisHandlers(service Lookuper, log *logger.Logger, recorder LookupRecorder) *WhoisHandlers {
	return &WhoisHandlers{
		service:  service,
		log:      log.With("handler", "whois"),
		recorder: recorder,
	}
}

// WhoisLookupHandler godoc
// @Summary      Perform WHOIS lookup for a domain
// @Description  Queries the WHOIS provider and returns either the domain view or the contact view of the record.
// @Tags         WHOIS
// @Produce      json
// @Param        domain query string true "Domain for WHOIS lookup"
// @Param        type query string true "Record type" Enums(domain, contact)
// @Success      200 {object} models.DomainInfo "Domain view (type=domain)"
// @Success      200 {object} models.ContactInfo "Contact view (type=contact)"
// @Failure      400 {object} models.ErrorResponse "Invalid parameters or provider-reported error"
// @Failure      500 {object} models.ErrorResponse "Server misconfiguration or unexpected error"
// @Failure      503 {object} models.ErrorResponse "WHOIS provider unreachable"
// @Router       /whois [get]
func (h *WhoisHandlers) WhoisLookupHandler(c *gin.Context) {
	domainQuery := strings.TrimSpace(c.Query("domain"))
	typeQuery := strings.TrimSpace(c.Query("type"))

	record, err := h.service.Lookup(c.Request.Context(), domainQuery, typeQuery)
	if err != nil {
		h.fail(c, typeQuery, domainQuery, err)
		return
	}

	h.observe(typeQuery, "ok")
	c.JSON(http.StatusOK, record)
}

// FullWhoisLookupHandler godoc
// @Summary      Perform a combined WHOIS lookup
// @Description  Returns the union of the domain and contact views of one WHOIS record.
// @Tags         WHOIS
// @Produce      json
// @Param        domain query string true "Domain for WHOIS lookup"
// @Success      200 {object} models.FullWhoisInfo
// @Failure      400 {object} models.ErrorResponse
// @Failure      500 {object} models.ErrorResponse
// @Failure      503 {object} models.ErrorResponse
// @Router       /whois/full [get]
func (h *WhoisHandlers) FullWhoisLookupHandler(c *gin.Context) {
	domainQuery := strings.TrimSpace(c.Query("domain"))

	full, err := h.service.LookupFull(c.Request.Context(), domainQuery)
	if err != nil {
		h.fail(c, "full", domainQuery, err)
		return
	}

	h.observe("full", "ok")
	c.JSON(http.StatusOK, full)
}

// fail is the single place lookup errors become HTTP responses.
func (h *WhoisHandlers) fail(c *gin.Context, recordType, domainQuery string, err error) {
	lerr := lookup.AsError(err)
	status := lerr.HTTPStatus()

	switch lerr.Kind {
	case lookup.KindValidation, lookup.KindUpstreamApplication:
		h.log.Debug("lookup rejected", "domain", domainQuery, "type", recordType, "error", err)
	default:
		h.log.Error("lookup failed", "domain", domainQuery, "type", recordType, "status", status, "error", err)
	}

	h.observe(recordType, lerr.Kind.String())
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error:   lerr.Title(),
		Message: lerr.Message,
	})
}

func (h *WhoisHandlers) observe(recordType, outcome string) {
	if h.recorder == nil {
		return
	}
	if _, ok := lookup.ParseRecordType(recordType); !ok && recordType != "full" {
		recordType = "invalid"
	}
	h.recorder.ObserveLookup(recordType, outcome)
}
