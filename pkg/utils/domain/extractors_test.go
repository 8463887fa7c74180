package domain

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) string {
	return fixedNow.Add(-time.Duration(days) * 24 * time.Hour).Format(time.RFC3339)
}

func TestEstimateAgeAt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", Unknown},
		{"garbage", "not a date", Unknown},
		{"ten days", daysAgo(10), "0 months"},
		{"thirty days", daysAgo(30), "1 month"},
		{"two months", daysAgo(61), "2 months"},
		{"just under a year", daysAgo(364), "12 months"},
		{"one year", daysAgo(365), "1 year"},
		{"eight hundred days", daysAgo(800), "2 years"},
		{"future", fixedNow.Add(48 * time.Hour).Format(time.RFC3339), "0 months"},
		{"provider normalized layout", "2006-09-03 00:00:00 UTC", "18 years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateAgeAt(tt.raw, fixedNow))
		})
	}
}

func TestEstimateAge_RelativeToNow(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "0 months", EstimateAge(now.Add(-10*24*time.Hour).Format(time.RFC3339)))
	assert.Equal(t, "2 years", EstimateAge(now.Add(-800*24*time.Hour).Format(time.RFC3339)))
}

// ageRank orders age strings so that monotonicity can be compared.
func ageRank(t *testing.T, age string) int {
	t.Helper()
	var n int
	var unit string
	_, err := fmt.Sscan(age, &n, &unit)
	if err != nil {
		t.Fatalf("unparseable age %q: %v", age, err)
	}
	if strings.HasPrefix(unit, "year") {
		return 1_000_000 + n
	}
	return n
}

func TestEstimateAgeAt_Monotonic(t *testing.T) {
	prev := -1
	for days := 0; days <= 3000; days += 7 {
		rank := ageRank(t, EstimateAgeAt(daysAgo(days), fixedNow))
		assert.GreaterOrEqual(t, rank, prev, "age decreased at %d days", days)
		prev = rank
	}
}

func TestFormatHostnames(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"absent", ``, ""},
		{"not a list", `"ns1.example.com"`, ""},
		{"object", `{"a":1}`, ""},
		{"empty list", `[]`, ""},
		{"single", `["NS1.EXAMPLE.COM"]`, "ns1.example.com"},
		{"exactly 25", `["AAAAAAAAAAA","BBBBBBBBBBBB"]`, "aaaaaaaaaaa, bbbbbbbbbbbb"},
		{"truncated", `["NS1.EXAMPLE.COM","NS2.EXAMPLE.COM"]`, "ns1.example.com, ns2.e..."},
		{"non-string entries skipped", `[null,"NS1.A.COM",{"h":1},7,""]`, "ns1.a.com"},
		{"only non-string entries", `[null,true]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHostnames(gjson.Parse(tt.json)))
		})
	}
}

func TestFormatHostnames_NeverExceeds25(t *testing.T) {
	hosts := []string{}
	for i := 0; i < 10; i++ {
		hosts = append(hosts, `"`+strings.Repeat("N", i+1)+`.EXAMPLE"`)
		got := FormatHostnames(gjson.Parse("[" + strings.Join(hosts, ",") + "]"))
		count := utf8.RuneCountInString(got)

		assert.LessOrEqual(t, count, 25)
		if strings.HasSuffix(got, "...") {
			assert.Equal(t, 25, count)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", Unknown},
		{"3.9.2006 00:00:00", Unknown},
		{"yesterday", Unknown},
		{"2020-01-05", "Jan 5, 2020"},
		{"1995-08-14T04:00:00Z", "Aug 14, 1995"},
		{"2021-09-03 00:00:00 UTC", "Sep 3, 2021"},
		{"2019-01-08 12:41:48.552 UTC", "Jan 8, 2019"},
		{"14-Aug-1995", "Aug 14, 1995"},
		{"2024/12/31", "Dec 31, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.raw))
		})
	}
}
