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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reeldb/reeldb/lib/log"
	"github.com/reeldb/reeldb/lib/str"
	"gorm.io/gorm"
)

// currency markers found in raw gross income strings
var grossMarkers = []string{"$", "INR"}

// ParseGross converts a raw gross income string like "$1,234,567.89"
// or "INR500,000" to cents. The markers and thousands separators are
// stripped, the remainder must be digits with at most one decimal
// point. A blank or unparseable string returns (0, false) and is
// treated as absent by the caller.
func ParseGross(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, marker := range grossMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	whole, frac := s, ""
	if idx := strings.Index(s, "."); idx != -1 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" && frac == "" {
		return 0, false
	}
	if whole == "" {
		whole = "0"
	}
	if !digits(whole) || (frac != "" && !digits(frac)) {
		return 0, false
	}

	cents, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, false
	}
	cents *= 100
	if len(frac) == 1 {
		cents += int64(frac[0]-'0') * 10
	} else if len(frac) >= 2 {
		cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
		if len(frac) > 2 && frac[2] >= '5' {
			cents++
		}
	}
	return cents, true
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Dollars formats cents as a plain decimal string.
func Dollars(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// SplitValues tokenizes a comma-delimited field, trims each token and
// keeps at most the first limit tokens in source order. Blank tokens
// from trailing or doubled delimiters are kept; a blank source string
// yields no tokens at all.
func SplitValues(s string, limit int) []string {
	tokens := str.Split(s)
	if limit > 0 && len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return tokens
}

// Normalize runs the cleaning pipeline over the loaded snapshot. The
// order is significant: gross income coercion, then the membership
// rebuild from the raw pre-sentinel values, then sentinel
// standardization. Running it twice yields identical tables.
func (d *Dataset) Normalize() error {
	run := NormalizeRun{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	err := d.coerceGross()
	if err != nil {
		return err
	}

	countries, languages, err := d.rebuildMemberships()
	if err != nil {
		return err
	}

	err = d.standardize()
	if err != nil {
		return err
	}

	if d.config.Search.BleveDir != "" {
		err = d.syncIndex()
		if err != nil {
			return err
		}
	}

	run.Movies = d.MovieCount()
	run.Countries = countries
	run.Languages = languages
	run.FinishedAt = time.Now()
	return d.createRun(&run)
}

// raw returns a source field value, treating the sentinel written by
// a previous standardization pass as absent so the pipeline stays
// idempotent across runs.
func (d *Dataset) raw(s string) string {
	if s == d.config.Dataset.Sentinel {
		return ""
	}
	return s
}

func (d *Dataset) coerceGross() error {
	var movies []Movie
	err := d.db.Find(&movies).Error
	if err != nil {
		return err
	}
	for _, m := range movies {
		cents, ok := ParseGross(d.raw(m.WorldwideGross))
		if !ok && strings.TrimSpace(d.raw(m.WorldwideGross)) != "" {
			// non-fatal, same as absent
			log.Printf("unparseable gross for %s: %q\n", m.MID, m.WorldwideGross)
		}
		err = d.db.Model(&Movie{}).Where("m_id = ?", m.MID).
			Update("gross_income", cents).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// rebuildMemberships clears and repopulates the derived country and
// language tables from the raw movie fields. The whole rebuild runs
// in one transaction so readers never see a partially populated
// table.
func (d *Dataset) rebuildMemberships() (countries, languages int64, err error) {
	limit := d.config.Dataset.MembershipLimit
	err = d.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec("delete from movie_countries").Error
		if err != nil {
			return err
		}
		err = tx.Exec("delete from movie_languages").Error
		if err != nil {
			return err
		}

		var movies []Movie
		err = tx.Find(&movies).Error
		if err != nil {
			return err
		}
		for _, m := range movies {
			for i, country := range SplitValues(d.raw(m.Country), limit) {
				c := CountryMembership{
					MID:     m.MID,
					Country: country,
					Rank:    i + 1,
				}
				err = tx.Create(&c).Error
				if err != nil {
					return err
				}
				countries++
			}
			for i, language := range SplitValues(d.raw(m.Languages), limit) {
				l := LanguageMembership{
					MID:      m.MID,
					Language: language,
					Rank:     i + 1,
				}
				err = tx.Create(&l).Error
				if err != nil {
					return err
				}
				languages++
			}
		}
		return nil
	})
	return
}

// standardize replaces missing text values with the sentinel and
// missing numeric values with zero. It runs after the membership
// rebuild and never touches fields that already have a value.
func (d *Dataset) standardize() error {
	sentinel := d.config.Dataset.Sentinel

	text := []string{"country", "languages", "production_company", "worldwide_gross"}
	for _, column := range text {
		err := d.db.Model(&Movie{}).
			Where(column+" is null or trim("+column+") = ''").
			Update(column, sentinel).Error
		if err != nil {
			return err
		}
	}

	err := d.db.Model(&Movie{}).Where("gross_income is null").
		Update("gross_income", 0).Error
	if err != nil {
		return err
	}

	numeric := []string{"avg_rating", "total_votes", "median_rating"}
	for _, column := range numeric {
		err := d.db.Model(&Rating{}).Where(column+" is null").
			Update(column, 0).Error
		if err != nil {
			return err
		}
	}
	return nil
}
