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
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	inputs := []string{
		"USA, UK, France",
		"USA",
		" USA ,UK",
		"USA,",
		"",
		"   ",
	}

	expect := []string{
		"USA / UK / France",
		"USA",
		"USA / UK",
		"USA / ",
		"",
		"",
	}

	for i, v := range inputs {
		result := strings.Join(Split(v), " / ")
		if result != expect[i] {
			t.Errorf("got `%s` expect `%s`\n", result, expect[i])
		}
	}
}

func TestSortTitle(t *testing.T) {
	titles := []string{
		"The Shining",
		"A Quiet Place",
		"An American Werewolf in London",
		"Parasite",
		"Them",
	}

	expect := []string{
		"Shining, The",
		"Quiet Place, A",
		"American Werewolf in London, An",
		"Parasite",
		"Them",
	}

	for i, v := range titles {
		result := SortTitle(v)
		if result != expect[i] {
			t.Errorf("got `%s` expect `%s`\n", result, expect[i])
		}
	}
}

func TestAtoi(t *testing.T) {
	if Atoi("123") != 123 {
		t.Errorf("expect 123\n")
	}
	if Atoi("xyz") != 0 {
		t.Errorf("expect 0\n")
	}
	if Atoi("") != 0 {
		t.Errorf("expect 0\n")
	}
}

func TestAtof(t *testing.T) {
	if Atof("7.5") != 7.5 {
		t.Errorf("expect 7.5\n")
	}
	if Atof("NULL") != 0 {
		t.Errorf("expect 0\n")
	}
}
