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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/reeldb/reeldb/lib/date"
	"github.com/reeldb/reeldb/lib/log"
	"github.com/reeldb/reeldb/lib/str"
	"gorm.io/gorm"
)

// Load replaces the source tables with the CSV exports found in the
// configured directory. Each file is wipe-and-reload in its own
// transaction; missing files are skipped. Derived tables are not
// touched here, run Normalize afterwards.
func (d *Dataset) Load() error {
	loaders := []struct {
		file string
		wipe string
		load func(tx *gorm.DB, record []string) error
	}{
		{"movies.csv", "delete from movies", d.loadMovie},
		{"genres.csv", "delete from genres", d.loadGenre},
		{"director_mapping.csv", "delete from director_mapping", d.loadDirectorMapping},
		{"role_mapping.csv", "delete from role_mapping", d.loadRoleMapping},
		{"names.csv", "delete from names", d.loadName},
		{"ratings.csv", "delete from ratings", d.loadRating},
	}

	for _, l := range loaders {
		path := filepath.Join(d.config.Dataset.CSVDir, l.file)
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				log.Printf("no %s, skipping\n", l.file)
				continue
			}
			return err
		}
		err = d.db.Transaction(func(tx *gorm.DB) error {
			err := tx.Exec(l.wipe).Error
			if err != nil {
				return err
			}
			r := csv.NewReader(f)
			r.FieldsPerRecord = -1
			header := true
			for {
				record, err := r.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				if header {
					header = false
					continue
				}
				err = l.load(tx, record)
				if err != nil {
					return err
				}
			}
			return nil
		})
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// The dataset export uses the literal NULL for missing values.
func nullable(s string) string {
	if s == "NULL" {
		return ""
	}
	return s
}

// id,title,year,date_published,duration,country,worlwide_gross_income,languages,production_company
func (d *Dataset) loadMovie(tx *gorm.DB, record []string) error {
	if len(record) < 9 {
		return fmt.Errorf("movies: short record %v", record)
	}
	m := Movie{
		MID:               record[0],
		Title:             record[1],
		SortTitle:         str.SortTitle(record[1]),
		Year:              str.Atoi(record[2]),
		DatePublished:     date.ParseDate(nullable(record[3])),
		Duration:          str.Atoi(nullable(record[4])),
		Country:           nullable(record[5]),
		WorldwideGross:    nullable(record[6]),
		Languages:         nullable(record[7]),
		ProductionCompany: nullable(record[8]),
	}
	return tx.Create(&m).Error
}

// movie_id,genre
func (d *Dataset) loadGenre(tx *gorm.DB, record []string) error {
	if len(record) < 2 {
		return fmt.Errorf("genres: short record %v", record)
	}
	g := Genre{
		MID:   record[0],
		Genre: record[1],
	}
	return tx.Create(&g).Error
}

// movie_id,name_id
func (d *Dataset) loadDirectorMapping(tx *gorm.DB, record []string) error {
	if len(record) < 2 {
		return fmt.Errorf("director_mapping: short record %v", record)
	}
	dm := DirectorMapping{
		MID: record[0],
		NID: record[1],
	}
	return tx.Create(&dm).Error
}

// movie_id,name_id,category
func (d *Dataset) loadRoleMapping(tx *gorm.DB, record []string) error {
	if len(record) < 3 {
		return fmt.Errorf("role_mapping: short record %v", record)
	}
	rm := RoleMapping{
		MID:      record[0],
		NID:      record[1],
		Category: record[2],
	}
	return tx.Create(&rm).Error
}

// id,name,height,date_of_birth,known_for_movies
func (d *Dataset) loadName(tx *gorm.DB, record []string) error {
	if len(record) < 5 {
		return fmt.Errorf("names: short record %v", record)
	}
	n := Name{
		NID:            record[0],
		Name:           record[1],
		Height:         str.Atoi(nullable(record[2])),
		DateOfBirth:    date.ParseDate(nullable(record[3])),
		KnownForMovies: nullable(record[4]),
	}
	return tx.Create(&n).Error
}

// movie_id,avg_rating,total_votes,median_rating
func (d *Dataset) loadRating(tx *gorm.DB, record []string) error {
	if len(record) < 4 {
		return fmt.Errorf("ratings: short record %v", record)
	}
	r := Rating{
		MID:          record[0],
		AvgRating:    str.Atof(nullable(record[1])),
		TotalVotes:   str.Atoi(nullable(record[2])),
		MedianRating: str.Atof(nullable(record[3])),
	}
	return tx.Create(&r).Error
}
