package dto

import (
	"strings"

	"github.com/tippliga/tippliga/internal/domain"
)

// NormalizeStatus maps inbound status strings, including the Hungarian
// synonyms the legacy clients still send, onto the two-state domain enum.
// The domain itself never sees the locale variants.
func NormalizeStatus(s string) (domain.EventStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "OPEN", "NYITOTT":
		return domain.EventOpen, true
	case "CLOSED", "LEZÁRT", "LEZART":
		return domain.EventClosed, true
	default:
		return "", false
	}
}
