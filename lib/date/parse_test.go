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

package date

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d := ParseDate("2017-09-29")
	if d.Day() != 29 {
		t.Errorf("wrong day got %d\n", d.Day())
	}
	if d.Month() != time.September {
		t.Errorf("wrong month got %s\n", d.Month())
	}
	if d.Year() != 2017 {
		t.Errorf("wrong year got %d\n", d.Year())
	}

	d = ParseDate("2017-09")
	if d.Year() != 2017 || d.Month() != time.September {
		t.Errorf("got %s\n", d.String())
	}

	d = ParseDate("2017")
	if d.Year() != 2017 {
		t.Errorf("got %s\n", d.String())
	}

	// dd-mm-yyyy publish dates
	d = ParseDate("29-09-2017")
	if d.Year() != 2017 || d.Month() != time.September || d.Day() != 29 {
		t.Errorf("got %s\n", d.String())
	}

	d = ParseDate("")
	if !d.IsZero() {
		t.Errorf("expected zero time\n")
	}

	d = ParseDate("not a date")
	if !d.IsZero() {
		t.Errorf("expected zero time\n")
	}
}
