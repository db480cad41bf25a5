/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case is a transform applied to substituted values.
type Case string

// Supported case transforms.
const (
	CaseNone  Case = "none"
	CaseLower Case = "lower"
	CaseUpper Case = "upper"
	CaseTitle Case = "title"
)

// ParseCase parses a case name. The empty string means CaseNone.
func ParseCase(s string) (Case, error) {
	switch Case(s) {
	case "", CaseNone:
		return CaseNone, nil
	case CaseLower, CaseUpper, CaseTitle:
		return Case(s), nil
	default:
		return CaseNone, fmt.Errorf("%w: %q (want none, lower, upper or title)", ErrInvalidCase, s)
	}
}

// Apply transforms s.
func (c Case) Apply(s string) string {
	switch c {
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseTitle:
		return cases.Title(language.English).String(s)
	default:
		return s
	}
}
