package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// Unknown is substituted for names and dates the provider did not return.
	Unknown = "Unknown"
	// NotAvailable is substituted for contact fields the provider did not return.
	NotAvailable = "Not available"

	maxHostnamesLength = 25
	hostnamesKeep      = 22

	dayLength   = 24 * time.Hour
	yearLength  = 365 * dayLength
	monthLength = 30 * dayLength

	displayDateLayout = "Jan 2, 2006"
)

// Date layouts seen in whoisxmlapi responses and in registry text.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05 UTC",
	"2006-01-02 15:04:05.000 UTC",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2-Jan-2006",
	"January 02 2006",
	"2006/01/02",
}

// ParseDate attempts each known layout in turn.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// EstimateAge renders the time elapsed since registration as whole years, or
// whole months when the domain is younger than a year.
func EstimateAge(registrationDate string) string {
	return EstimateAgeAt(registrationDate, time.Now())
}

// EstimateAgeAt is EstimateAge with an explicit reference time. Years and months
// are computed independently from the elapsed days (365 and 30 day units).
func EstimateAgeAt(registrationDate string, now time.Time) string {
	created, ok := ParseDate(registrationDate)
	if !ok {
		return Unknown
	}

	elapsed := now.Sub(created)
	if elapsed < 0 {
		elapsed = 0
	}

	if years := int(elapsed / yearLength); years >= 1 {
		return pluralize(years, "year")
	}

	return pluralize(int(elapsed/monthLength), "month")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatHostnames joins the name servers in lower case, truncating the joined
// string to 22 characters plus an ellipsis when it would exceed 25. Entries
// that are not non-empty strings are skipped.
func FormatHostnames(nameServers gjson.Result) string {
	if !nameServers.IsArray() {
		return ""
	}

	entries := nameServers.Array()
	hosts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != gjson.String || entry.Str == "" {
			continue
		}
		hosts = append(hosts, strings.ToLower(entry.Str))
	}

	joined := []rune(strings.Join(hosts, ", "))
	if len(joined) > maxHostnamesLength {
		return string(joined[:hostnamesKeep]) + "..."
	}

	return string(joined)
}

// FormatDate renders a provider date as e.g. "Jan 5, 2020".
func FormatDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return Unknown
	}
	return t.Format(displayDateLayout)
}
