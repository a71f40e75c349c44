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

package imdb

import (
	"strings"
	"testing"
)

func TestParseGross(t *testing.T) {
	inputs := []string{
		"$1,234,567.89",
		"INR500,000",
		"INR 2,345",
		"$300000",
		"1000",
		"12.5",
		"12.345",
		"$INR100",
	}

	expect := []int64{
		123456789,
		50000000,
		234500,
		30000000,
		100000,
		1250,
		1235,
		10000,
	}

	for i, v := range inputs {
		cents, ok := ParseGross(v)
		if !ok {
			t.Errorf("`%s` did not parse\n", v)
		}
		if cents != expect[i] {
			t.Errorf("`%s` got %d expect %d\n", v, cents, expect[i])
		}
	}

	bad := []string{
		"",
		"   ",
		"$",
		"INR",
		"abc",
		"1.2.3",
		"$12x",
		"-100",
	}

	for _, v := range bad {
		cents, ok := ParseGross(v)
		if ok {
			t.Errorf("`%s` parsed to %d, expected failure\n", v, cents)
		}
		if cents != 0 {
			t.Errorf("`%s` failed parse should be 0\n", v)
		}
	}
}

func TestDollars(t *testing.T) {
	if Dollars(123456789) != "1234567.89" {
		t.Errorf("got %s\n", Dollars(123456789))
	}
	if Dollars(50000000) != "500000.00" {
		t.Errorf("got %s\n", Dollars(50000000))
	}
	if Dollars(0) != "0.00" {
		t.Errorf("got %s\n", Dollars(0))
	}
}

func TestSplitValues(t *testing.T) {
	inputs := []string{
		"USA, UK, France, Germany",
		"USA, UK, France",
		"USA",
		" USA ,UK",
		"USA,",
		"",
		"   ",
	}

	expect := []string{
		"USA|UK|France",
		"USA|UK|France",
		"USA",
		"USA|UK",
		"USA|",
		"",
		"",
	}

	for i, v := range inputs {
		result := strings.Join(SplitValues(v, 3), "|")
		if result != expect[i] {
			t.Errorf("`%s` got `%s` expect `%s`\n", v, result, expect[i])
		}
	}

	// blank and null sources contribute no tokens
	if len(SplitValues("", 3)) != 0 {
		t.Errorf("expected no tokens\n")
	}

	// the cap is configurable
	if len(SplitValues("a,b,c,d,e", 2)) != 2 {
		t.Errorf("expected 2 tokens\n")
	}
}
