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

// Package report assembles read-only aggregate views over a
// normalized dataset snapshot. It consumes the derived tables, it
// never writes.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/reeldb/reeldb/imdb"
)

type Report struct {
	Movies     int64
	Normalized time.Time
	Genres     []imdb.GenreCount
	Years      []imdb.YearCount
	Durations  []imdb.GenreDuration
	Companies  []imdb.CompanyGross
	Countries  []imdb.RegionCount
	Languages  []imdb.RegionCount
	Directors  []imdb.DirectorCount
	TopGross   []imdb.Movie
}

const topLimit = 10

func Build(d *imdb.Dataset) *Report {
	return &Report{
		Movies:     d.MovieCount(),
		Normalized: d.LastNormalized(),
		Genres:     d.GenreCounts(),
		Years:      d.MoviesPerYear(),
		Durations:  d.AvgDurationByGenre(),
		Companies:  d.CompanyGrossTotals(topLimit),
		Countries:  d.CountryCounts(),
		Languages:  d.LanguageCounts(),
		Directors:  d.TopDirectors(topLimit),
		TopGross:   d.TopGrossing(0, topLimit),
	}
}

func (r *Report) Write(w io.Writer) {
	fmt.Fprintf(w, "movies %d\n", r.Movies)
	if !r.Normalized.IsZero() {
		fmt.Fprintf(w, "normalized %s\n", r.Normalized.Format(time.RFC3339))
	}

	fmt.Fprintf(w, "\nmovies by genre\n")
	for _, g := range r.Genres {
		fmt.Fprintf(w, "  %s %d\n", g.Genre, g.Movies)
	}

	fmt.Fprintf(w, "\nmovies by year\n")
	for _, y := range r.Years {
		fmt.Fprintf(w, "  %d %d\n", y.Year, y.Movies)
	}

	fmt.Fprintf(w, "\navg duration by genre\n")
	for _, g := range r.Durations {
		fmt.Fprintf(w, "  %s %.1f\n", g.Genre, g.AvgDuration)
	}

	fmt.Fprintf(w, "\ntop production companies\n")
	for _, c := range r.Companies {
		fmt.Fprintf(w, "  %s %s (%d movies)\n",
			c.ProductionCompany, imdb.Dollars(c.Total), c.Movies)
	}

	fmt.Fprintf(w, "\nmovies by country\n")
	for _, c := range r.Countries {
		fmt.Fprintf(w, "  %s %d\n", c.Name, c.Movies)
	}

	fmt.Fprintf(w, "\nmovies by language\n")
	for _, l := range r.Languages {
		fmt.Fprintf(w, "  %s %d\n", l.Name, l.Movies)
	}

	fmt.Fprintf(w, "\ntop directors\n")
	for _, n := range r.Directors {
		fmt.Fprintf(w, "  %s %d\n", n.Name, n.Movies)
	}

	fmt.Fprintf(w, "\ntop grossing\n")
	for _, m := range r.TopGross {
		fmt.Fprintf(w, "  %s (%d) %s\n", m.Title, m.Year, imdb.Dollars(m.GrossIncome))
	}
}
