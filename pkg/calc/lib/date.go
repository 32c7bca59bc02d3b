// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lib

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Today is the special date denoting the current day.
const Today = "today"

// DefaultDateFormat is the order of components in a date, when none is given.
const DefaultDateFormat = "ymd"

// Length of the coarser units, in days.
const (
	daysPerYear  = 365
	daysPerMonth = 30
)

// DateDiff computes the difference date1 - date2 in the given units.  Dates are
// hyphen separated, with components ordered according to the format (e.g.
// "ymd" or "mdy"), or the special date "today".  Units are one of "y" (years of
// 365 days), "M" (months of 30 days), "d" (days), "h" (hours), "m" (minutes) or
// "s" (seconds).  Years, months and days are measured in whole days.
func DateDiff(date1 string, date2 string, units string, format string) (float64, error) {
	return DateDiffAt(time.Now(), date1, date2, units, format)
}

// DateDiffAt is DateDiff, where "today" is the given instant.
func DateDiffAt(now time.Time, date1 string, date2 string, units string, format string) (float64, error) {
	minuend, err := parseDate(now, date1, format)
	if err != nil {
		return 0, err
	}
	//
	subtrahend, err := parseDate(now, date2, format)
	if err != nil {
		return 0, err
	}
	//
	var (
		delta   = minuend.Sub(subtrahend)
		days    = wholeDays(delta)
		seconds = delta.Seconds()
	)
	//
	switch units {
	case "y":
		return days / daysPerYear, nil
	case "M":
		return days / daysPerMonth, nil
	case "d":
		return days, nil
	case "h":
		return seconds / 3600, nil
	case "m":
		return seconds / 60, nil
	case "s":
		return seconds, nil
	default:
		return 0, fmt.Errorf("unknown date units %q", units)
	}
}

// Number of whole days in a duration, rounded towards negative infinity.
func wholeDays(delta time.Duration) float64 {
	const day = 24 * time.Hour
	//
	days := delta / day
	if delta%day < 0 {
		days--
	}
	//
	return float64(days)
}

func parseDate(now time.Time, date string, format string) (time.Time, error) {
	if date == Today {
		// Wall clock reading, so that daylight saving never shortens a day.
		return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(),
			now.Nanosecond(), time.UTC), nil
	}
	//
	if format == "" {
		format = DefaultDateFormat
	}
	//
	parts := strings.Split(date, "-")
	if len(parts) != len(format) {
		return time.Time{}, fmt.Errorf("date %q does not match format %q", date, format)
	}
	//
	var year, month, day int
	//
	for i, c := range format {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
		}
		//
		switch c {
		case 'y':
			year = n
		case 'm':
			month = n
		case 'd':
			day = n
		default:
			return time.Time{}, fmt.Errorf("invalid date format %q", format)
		}
	}
	//
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject dates which time.Date normalised (e.g. 2001-02-29)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	//
	return t, nil
}
