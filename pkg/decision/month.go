// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package decision

import (
	"fmt"
	"time"
)

// Month is a calendar month, the granularity of every payment boundary.
// The zero value is not a valid month.
type Month struct {
	Year  int
	Month time.Month
}

func NewMonth(year int, month time.Month) Month {
	return Month{Year: year, Month: month}
}

// MonthOf returns the month the given instant falls in (in the instant's own location)
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses the YYYY-MM form produced by Month.String
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// MustParseMonth is ParseMonth for literals in tests and fixtures
func MustParseMonth(s string) Month {
	m, err := ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) index() int {
	return m.Year*12 + int(m.Month) - 1
}

func monthFromIndex(i int) Month {
	return Month{Year: i / 12, Month: time.Month(i%12 + 1)}
}

// Compare returns -1, 0 or +1, usable with slices.SortFunc
func (m Month) Compare(o Month) int {
	switch {
	case m.index() < o.index():
		return -1
	case m.index() > o.index():
		return 1
	}
	return 0
}

func (m Month) Before(o Month) bool { return m.index() < o.index() }

func (m Month) After(o Month) bool { return m.index() > o.index() }

func (m Month) Next() Month { return monthFromIndex(m.index() + 1) }

func (m Month) Prev() Month { return monthFromIndex(m.index() - 1) }

// FirstDay is midnight UTC on the first day of the month
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return []byte{}, nil
	}
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = Month{}
		return nil
	}
	parsed, err := ParseMonth(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MaxMonth returns the later of the two months
func MaxMonth(a, b Month) Month {
	if a.After(b) {
		return a
	}
	return b
}
