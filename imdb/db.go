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
	"errors"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// rank is a reserved word in MySQL 8, the order clause must let the
// dialect quote it.
func membershipOrder() clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: "rank"}}
}

func (d *Dataset) openDB() (err error) {
	var glog logger.Interface
	if d.config.Dataset.DB.LogMode == false {
		glog = logger.Discard
	} else {
		glog = logger.Default
	}
	cfg := &gorm.Config{
		Logger: glog,
	}

	switch d.config.Dataset.DB.Driver {
	case "sqlite3":
		d.db, err = gorm.Open(sqlite.Open(d.config.Dataset.DB.Source), cfg)
	case "mysql":
		d.db, err = gorm.Open(mysql.Open(d.config.Dataset.DB.Source), cfg)
	case "postgres":
		d.db, err = gorm.Open(postgres.Open(d.config.Dataset.DB.Source), cfg)
	default:
		err = errors.New("driver not supported")
	}

	if err != nil {
		return
	}

	d.db.AutoMigrate(&Movie{}, &Genre{}, &DirectorMapping{}, &RoleMapping{},
		&Name{}, &Rating{}, &CountryMembership{}, &LanguageMembership{},
		&NormalizeRun{})
	return
}

func (d *Dataset) closeDB() {
	conn, err := d.db.DB()
	if err != nil {
		return
	}
	conn.Close()
}

func (d *Dataset) Movies() []Movie {
	var movies []Movie
	d.db.Order("sort_title").Find(&movies)
	return movies
}

func (d *Dataset) Movie(mid string) (*Movie, error) {
	var movie Movie
	err := d.db.Where("m_id = ?", mid).First(&movie).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("movie not found")
	}
	return &movie, err
}

func (d *Dataset) MovieCount() int64 {
	var count int64
	d.db.Model(&Movie{}).Count(&count)
	return count
}

func (d *Dataset) moviesFor(keys []string) []Movie {
	var movies []Movie
	d.db.Where("m_id in (?)", keys).Find(&movies)
	return movies
}

// Countries of a movie from the derived membership table, in source
// order.
func (d *Dataset) Countries(m *Movie) []string {
	var memberships []CountryMembership
	var list []string
	d.db.Where("m_id = ?", m.MID).Order(membershipOrder()).Find(&memberships)
	for _, c := range memberships {
		list = append(list, c.Country)
	}
	return list
}

func (d *Dataset) Languages(m *Movie) []string {
	var memberships []LanguageMembership
	var list []string
	d.db.Where("m_id = ?", m.MID).Order(membershipOrder()).Find(&memberships)
	for _, l := range memberships {
		list = append(list, l.Language)
	}
	return list
}

func (d *Dataset) Genres(m *Movie) []string {
	var genres []Genre
	var list []string
	d.db.Where("m_id = ?", m.MID).Order("genre").Find(&genres)
	for _, g := range genres {
		list = append(list, g.Genre)
	}
	return list
}

func (d *Dataset) Directors(m *Movie) []Name {
	var names []Name
	d.db.Where("names.n_id in (select n_id from director_mapping where m_id = ?)", m.MID).
		Order("names.name").Find(&names)
	return names
}

func (d *Dataset) RatingFor(m *Movie) (*Rating, error) {
	var rating Rating
	err := d.db.Where("m_id = ?", m.MID).First(&rating).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("rating not found")
	}
	return &rating, err
}

func (d *Dataset) Country(name string) []Movie {
	var movies []Movie
	d.db.Where("movies.m_id in (select m_id from movie_countries where country = ?)", name).
		Order("movies.year, movies.sort_title").Find(&movies)
	return movies
}

func (d *Dataset) Language(name string) []Movie {
	var movies []Movie
	d.db.Where("movies.m_id in (select m_id from movie_languages where language = ?)", name).
		Order("movies.year, movies.sort_title").Find(&movies)
	return movies
}

func (d *Dataset) Genre(name string) []Movie {
	var movies []Movie
	d.db.Where("movies.m_id in (select m_id from genres where genre = ?)", name).
		Order("movies.year, movies.sort_title").Find(&movies)
	return movies
}

func (d *Dataset) TopGrossing(year, limit int) []Movie {
	var movies []Movie
	q := d.db.Order("gross_income desc").Limit(limit)
	if year > 0 {
		q = q.Where("year = ?", year)
	}
	q.Find(&movies)
	return movies
}

func (d *Dataset) TopRated(minVotes, limit int) []Movie {
	var movies []Movie
	d.db.Raw(`select m.* from movies m`+
		` inner join ratings r on r.m_id = m.m_id`+
		` where r.total_votes >= ? order by r.avg_rating desc limit ?`,
		minVotes, limit).Scan(&movies)
	return movies
}

func (d *Dataset) GenreCounts() []GenreCount {
	var counts []GenreCount
	d.db.Model(&Genre{}).Select("genre, count(*) as movies").
		Group("genre").Order("movies desc").Scan(&counts)
	return counts
}

func (d *Dataset) MoviesPerYear() []YearCount {
	var counts []YearCount
	d.db.Model(&Movie{}).Select("year, count(*) as movies").
		Group("year").Order("year").Scan(&counts)
	return counts
}

func (d *Dataset) AvgDurationByGenre() []GenreDuration {
	var durations []GenreDuration
	d.db.Raw(`select g.genre, avg(m.duration) as avg_duration from genres g` +
		` inner join movies m on m.m_id = g.m_id` +
		` group by g.genre order by avg_duration desc`).Scan(&durations)
	return durations
}

func (d *Dataset) CompanyGrossTotals(limit int) []CompanyGross {
	var totals []CompanyGross
	d.db.Model(&Movie{}).
		Select("production_company, sum(gross_income) as total, count(*) as movies").
		Group("production_company").Order("total desc").Limit(limit).Scan(&totals)
	return totals
}

func (d *Dataset) CountryCounts() []RegionCount {
	var counts []RegionCount
	d.db.Model(&CountryMembership{}).Select("country as name, count(*) as movies").
		Group("country").Order("movies desc").Scan(&counts)
	return counts
}

func (d *Dataset) LanguageCounts() []RegionCount {
	var counts []RegionCount
	d.db.Model(&LanguageMembership{}).Select("language as name, count(*) as movies").
		Group("language").Order("movies desc").Scan(&counts)
	return counts
}

func (d *Dataset) TopDirectors(limit int) []DirectorCount {
	var counts []DirectorCount
	d.db.Raw(`select n.name, count(*) as movies from director_mapping dm`+
		` inner join names n on n.n_id = dm.n_id`+
		` group by n.name order by movies desc limit ?`, limit).Scan(&counts)
	return counts
}

func (d *Dataset) LastRun() (*NormalizeRun, error) {
	var run NormalizeRun
	err := d.db.Order("finished_at desc").First(&run).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("never normalized")
	}
	return &run, err
}

func (d *Dataset) LastNormalized() time.Time {
	run, err := d.LastRun()
	if err != nil {
		return time.Time{}
	}
	return run.FinishedAt
}

func (d *Dataset) createRun(r *NormalizeRun) error {
	return d.db.Create(r).Error
}
