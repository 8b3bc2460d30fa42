package utils

import "strings"

// NormalizeStudentID reformats a student id into the XXX-XX-XXXX display
// shape, dropping anything that is not a digit. The grouping is cosmetic
// only; no institutional checksum exists for it.
func NormalizeStudentID(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	v := digits.String()
	if len(v) > 9 {
		v = v[:9]
	}
	switch {
	case len(v) <= 3:
		return v
	case len(v) <= 5:
		return v[:3] + "-" + v[3:]
	default:
		return v[:3] + "-" + v[3:5] + "-" + v[5:]
	}
}
