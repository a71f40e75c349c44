// Copyright (C) 2023 The Reeldb Authors.
//
// This file is part of Reeldb.
//
// Reeldb is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Reeldb is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Reeldb.  If not, see <https://www.gnu.org/licenses/>.

package str

import (
	"strconv"
	"strings"
)

// Split a comma-delimited string into trimmed tokens. Blank input
// yields an empty slice, blank segments are kept.
func Split(s string) []string {
	if strings.TrimSpace(s) == "" {
		return make([]string, 0)
	}
	a := strings.Split(s, ",")
	for i := range a {
		a[i] = strings.TrimSpace(a[i])
	}
	return a
}

// SortTitle moves a leading article to the end so titles sort
// naturally: "The Fall" becomes "Fall, The".
func SortTitle(title string) string {
	for _, article := range []string{"The ", "An ", "A "} {
		if strings.HasPrefix(title, article) {
			return strings.TrimPrefix(title, article) +
				", " + strings.TrimSpace(article)
		}
	}
	return title
}

func Atoi(a string) int {
	i, err := strconv.Atoi(a)
	if err != nil {
		i = 0
	}
	return i
}

func Atof(a string) float64 {
	f, err := strconv.ParseFloat(a, 64)
	if err != nil {
		f = 0
	}
	return f
}
