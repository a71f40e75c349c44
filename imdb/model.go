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
	"time"

	"github.com/reeldb/reeldb/lib/gorm"
)

// Movie is a row of the source dataset. MID is the IMDB identifier and
// never changes once loaded. Country, Languages and WorldwideGross
// hold the raw delimited/currency strings; GrossIncome is the derived
// numeric value in cents.
type Movie struct {
	gorm.Model
	MID               string `gorm:"uniqueIndex:idx_movie_mid"`
	Title             string
	SortTitle         string
	Year              int
	DatePublished     time.Time
	Duration          int
	Country           string
	WorldwideGross    string
	Languages         string
	ProductionCompany string
	GrossIncome       int64
}

type Genre struct {
	gorm.Model
	MID   string `gorm:"index:idx_genre_mid"`
	Genre string
}

type DirectorMapping struct {
	gorm.Model
	MID string `gorm:"index:idx_director_mid"`
	NID string
}

func (DirectorMapping) TableName() string {
	return "director_mapping" // matches the source schema
}

type RoleMapping struct {
	gorm.Model
	MID      string `gorm:"index:idx_role_mid"`
	NID      string `gorm:"index:idx_role_nid"`
	Category string
}

func (RoleMapping) TableName() string {
	return "role_mapping" // matches the source schema
}

type Name struct {
	gorm.Model
	NID            string `gorm:"uniqueIndex:idx_name_nid"`
	Name           string
	Height         int
	DateOfBirth    time.Time
	KnownForMovies string
}

type Rating struct {
	gorm.Model
	MID          string `gorm:"uniqueIndex:idx_rating_mid"`
	AvgRating    float64
	TotalVotes   int
	MedianRating float64
}

// CountryMembership and LanguageMembership are derived one-to-many
// tables, fully rebuilt from the raw movie fields on every normalize
// run. Rank is the 1-based position in the source list.
type CountryMembership struct {
	gorm.Model
	MID     string `gorm:"index:idx_country_mid"`
	Country string
	Rank    int
}

func (CountryMembership) TableName() string {
	return "movie_countries"
}

type LanguageMembership struct {
	gorm.Model
	MID      string `gorm:"index:idx_language_mid"`
	Language string
	Rank     int
}

func (LanguageMembership) TableName() string {
	return "movie_languages"
}

// NormalizeRun records one pass of the cleaning pipeline.
type NormalizeRun struct {
	gorm.Model
	RunID      string `gorm:"uniqueIndex:idx_run_id"`
	StartedAt  time.Time
	FinishedAt time.Time
	Movies     int64
	Countries  int64
	Languages  int64
}

func (NormalizeRun) TableName() string {
	return "runs"
}

type GenreCount struct {
	Genre  string
	Movies int64
}

type YearCount struct {
	Year   int
	Movies int64
}

type GenreDuration struct {
	Genre       string
	AvgDuration float64
}

type CompanyGross struct {
	ProductionCompany string
	Total             int64
	Movies            int64
}

type RegionCount struct {
	Name   string
	Movies int64
}

type DirectorCount struct {
	Name   string
	Movies int64
}
