// Package taxcode parses HMRC tax-code strings into a structured form.
package taxcode

import (
	"errors"
	"strings"
)

// Special identifies the flat-rate and no-allowance codes that bypass the
// numeric allowance interpretation.
type Special string

const (
	SpecialNone Special = ""
	SpecialBR   Special = "BR"
	SpecialD0   Special = "D0"
	SpecialD1   Special = "D1"
	SpecialNT   Special = "NT"
	Special0T   Special = "0T"
)

var ErrInvalidTaxCode = errors.New("invalid_tax_code")

// TaxCode is the parsed representation of a raw code string. Exactly one
// interpretation applies: when Special is set, Allowance is zero and the
// remaining flags carry no meaning for the flat-rate computation.
type TaxCode struct {
	Raw        string
	Allowance  int64 // annual, pence; negative for K codes
	Special    Special
	KCode      bool
	Scottish   bool
	Welsh      bool
	Cumulative bool
	Emergency  bool
}

// Parse normalizes and parses a raw tax code. A string that matches neither a
// special code nor the region/K/digits pattern is rejected.
func Parse(raw string) (TaxCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return TaxCode{}, ErrInvalidTaxCode
	}

	tc := TaxCode{Raw: code, Cumulative: true}

	body := code
	if special, ok := matchSpecial(body); ok {
		tc.Special = special
		return tc, nil
	}

	body, tc.Emergency = stripEmergencySuffix(body)
	tc.Cumulative = !tc.Emergency

	switch {
	case strings.HasPrefix(body, "S"):
		tc.Scottish = true
		body = body[1:]
	case strings.HasPrefix(body, "C"):
		tc.Welsh = true
		body = body[1:]
	}

	// Regional flat-rate codes (SBR, CD0, ...) resolve to the same special
	// handling once the region marker is gone.
	if special, ok := matchSpecial(body); ok {
		tc.Special = special
		tc.Scottish = false
		tc.Welsh = false
		return tc, nil
	}

	if strings.HasPrefix(body, "K") {
		tc.KCode = true
		body = body[1:]
	}

	digits := leadingDigits(body)
	if digits == "" {
		return TaxCode{}, ErrInvalidTaxCode
	}

	var allowance int64
	for _, r := range digits {
		allowance = allowance*10 + int64(r-'0')
	}
	allowance *= 1000 // each tax-code unit is ten pounds of annual allowance
	if tc.KCode {
		allowance = -allowance
	}
	tc.Allowance = allowance

	return tc, nil
}

func matchSpecial(code string) (Special, bool) {
	switch Special(code) {
	case SpecialBR, SpecialD0, SpecialD1, SpecialNT, Special0T:
		return Special(code), true
	}
	return SpecialNone, false
}

// stripEmergencySuffix removes a trailing W1/M1 marker. The no-space form is
// only recognized when the marker follows a letter, so an M-suffix code such
// as 1257M is never misread.
func stripEmergencySuffix(code string) (string, bool) {
	for _, suffix := range []string{" W1", " M1"} {
		if strings.HasSuffix(code, suffix) {
			return strings.TrimSpace(strings.TrimSuffix(code, suffix)), true
		}
	}
	for _, suffix := range []string{"W1", "M1"} {
		if !strings.HasSuffix(code, suffix) {
			continue
		}
		rest := strings.TrimSuffix(code, suffix)
		if rest == "" {
			continue
		}
		last := rest[len(rest)-1]
		if last < '0' || last > '9' {
			return rest, true
		}
	}
	return code, false
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
