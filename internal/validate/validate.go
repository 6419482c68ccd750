package validate

import (
	"regexp"
	"strings"
)

var (
	// US ZIP: 5 digits
	reZIP    = regexp.MustCompile(`^[0-9]{5}$`)
	reEmail  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reCard   = regexp.MustCompile(`^[0-9]{13,19}$`)
	reExpiry = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

func Zip(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 5 {
		return "", false
	}
	return s, reZIP.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 40 {
		return "", false
	}
	return s, true
}

// CardNumber strips spaces, then checks length and the Luhn digit.
func CardNumber(s string) (string, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if !reCard.MatchString(s) {
		return "", false
	}
	return s, luhn(s)
}

// Expiry validates an MM/YY card expiry label.
func Expiry(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reExpiry.MatchString(s)
}

func luhn(s string) bool {
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
