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
	"github.com/reeldb/reeldb/config"
	"github.com/reeldb/reeldb/lib/log"
	"github.com/reeldb/reeldb/lib/search"
	"gorm.io/gorm"
)

const (
	FieldTitle     = "title"
	FieldYear      = "year"
	FieldGenre     = "genre"
	FieldCountry   = "country"
	FieldLanguage  = "language"
	FieldCompany   = "company"
	FieldDirector  = "director"
	FieldRuntime   = "runtime"
	FieldGross     = "gross"
	FieldVote      = "vote"
	FieldVoteCount = "vote_count"
)

type Dataset struct {
	config *config.Config
	db     *gorm.DB
}

func NewDataset(config *config.Config) *Dataset {
	return &Dataset{
		config: config,
	}
}

func (d *Dataset) Open() (err error) {
	return d.openDB()
}

func (d *Dataset) Close() {
	d.closeDB()
}

func (d *Dataset) newSearch() (*search.Search, error) {
	s := search.NewSearch(d.config)
	s.Keywords = []string{
		FieldGenre,
		FieldCountry,
		FieldLanguage,
	}
	err := s.Open("movies")
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (d *Dataset) Search(q string, limit ...int) []Movie {
	s, err := d.newSearch()
	if err != nil {
		log.Printf("search open: %s\n", err)
		return nil
	}
	defer s.Close()

	l := d.config.Dataset.SearchLimit
	if len(limit) == 1 {
		l = limit[0]
	}

	keys, err := s.Search(q, l)
	if err != nil {
		return nil
	}

	// split potentially large # of result keys into chunks to query
	chunkSize := 100
	var movies []Movie
	for i := 0; i < len(keys); i += chunkSize {
		end := i + chunkSize
		if end > len(keys) {
			end = len(keys)
		}
		chunk := keys[i:end]
		movies = append(movies, d.moviesFor(chunk)...)
	}

	return movies
}

func (d *Dataset) HasMovies() bool {
	return d.MovieCount() > 0
}
