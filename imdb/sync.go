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
	"github.com/reeldb/reeldb/lib/search"
)

// syncIndex rebuilds the bleve index from the normalized snapshot.
// Documents are keyed by movie identifier so search results map
// straight back to movie rows.
func (d *Dataset) syncIndex() error {
	s, err := d.newSearch()
	if err != nil {
		return err
	}
	defer s.Close()

	err = s.Reset()
	if err != nil {
		return err
	}

	index := make(search.IndexMap)
	for _, m := range d.Movies() {
		fields := make(search.FieldMap)
		search.AddField(fields, FieldTitle, m.Title)
		search.AddField(fields, FieldYear, m.Year)
		search.AddField(fields, FieldRuntime, m.Duration)
		search.AddField(fields, FieldCompany, m.ProductionCompany)
		search.AddField(fields, FieldGross, m.GrossIncome)

		for _, g := range d.Genres(&m) {
			search.AddField(fields, FieldGenre, g)
		}
		for _, c := range d.Countries(&m) {
			search.AddField(fields, FieldCountry, c)
		}
		for _, l := range d.Languages(&m) {
			search.AddField(fields, FieldLanguage, l)
		}
		for _, n := range d.Directors(&m) {
			search.AddField(fields, FieldDirector, n.Name)
		}

		rating, err := d.RatingFor(&m)
		if err == nil {
			search.AddField(fields, FieldVote, int(rating.AvgRating*10))
			search.AddField(fields, FieldVoteCount, rating.TotalVotes)
		}

		index[m.MID] = fields
	}
	s.Index(index)
	return nil
}
