package pillars

import (
	"regexp"
	"strconv"
)

// StatParts is a stat display value split for animated count-up rendering:
// the leading number is counted from zero while prefix and suffix stay fixed.
type StatParts struct {
	Prefix string  `json:"prefix"`
	Num    float64 `json:"num"`
	Suffix string  `json:"suffix"`
	HasNum bool    `json:"hasNum"`
}

// prefix, first number, remainder. Values like "12–18 mo", "+18%", "9.2/10".
var statPattern = regexp.MustCompile(`^(\D*)(\d+(?:\.\d+)?)(.*)$`)

// ParseStatValue splits a display value into prefix, leading numeric
// quantity, and suffix. Total: values with no digits yield num 0, HasNum
// false, and the whole value as suffix.
func ParseStatValue(v string) StatParts {
	match := statPattern.FindStringSubmatch(v)
	if match == nil {
		return StatParts{Suffix: v}
	}
	num, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return StatParts{Suffix: v}
	}
	return StatParts{
		Prefix: match[1],
		Num:    num,
		Suffix: match[3],
		HasNum: true,
	}
}
