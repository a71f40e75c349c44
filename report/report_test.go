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

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reeldb/reeldb/config"
	"github.com/reeldb/reeldb/imdb"
)

func writeCSV(t *testing.T, dir, name, data string) {
	err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644)
	if err != nil {
		t.Fatalf("write %s %s\n", name, err)
	}
}

func testReportDataset(t *testing.T) *imdb.Dataset {
	cfg, err := config.TestConfig("report")
	if err != nil {
		t.Fatalf("TestConfig %s\n", err)
	}

	dir := t.TempDir()
	writeCSV(t, dir, "movies.csv",
		"id,title,year,date_published,duration,country,worlwide_gross_income,languages,production_company\n"+
			"tt101,The Fall,2017,2017-09-29,117,\"USA, UK\",\"$1,234,567.89\",English,Sunrise Pictures\n"+
			"tt102,Stille Nacht,2018,2018-09-28,98,Germany,NULL,German,NULL\n")
	writeCSV(t, dir, "genres.csv",
		"movie_id,genre\ntt101,Drama\ntt102,Drama\n")
	writeCSV(t, dir, "director_mapping.csv",
		"movie_id,name_id\ntt101,nm201\ntt102,nm201\n")
	writeCSV(t, dir, "names.csv",
		"id,name,height,date_of_birth,known_for_movies\n"+
			"nm201,Maya Lindholm,170,1975-03-12,tt101\n")
	writeCSV(t, dir, "ratings.csv",
		"movie_id,avg_rating,total_votes,median_rating\n"+
			"tt101,7.9,1500,8\n")
	cfg.Dataset.CSVDir = dir

	d := imdb.NewDataset(cfg)
	err = d.Open()
	if err != nil {
		t.Fatalf("Open %s\n", err)
	}
	err = d.Load()
	if err != nil {
		t.Fatalf("Load %s\n", err)
	}
	err = d.Normalize()
	if err != nil {
		t.Fatalf("Normalize %s\n", err)
	}
	return d
}

func TestBuild(t *testing.T) {
	d := testReportDataset(t)
	defer d.Close()

	r := Build(d)
	if r.Movies != 2 {
		t.Errorf("got %d movies\n", r.Movies)
	}
	if r.Normalized.IsZero() {
		t.Errorf("expected normalized time\n")
	}
	if len(r.Genres) != 1 || r.Genres[0].Movies != 2 {
		t.Errorf("got %v\n", r.Genres)
	}
	if len(r.Countries) != 3 {
		// USA, UK, Germany
		t.Errorf("got %v\n", r.Countries)
	}
	if len(r.Directors) != 1 || r.Directors[0].Movies != 2 {
		t.Errorf("got %v\n", r.Directors)
	}
	if len(r.TopGross) == 0 || r.TopGross[0].MID != "tt101" {
		t.Errorf("got %v\n", r.TopGross)
	}
}

func TestWrite(t *testing.T) {
	d := testReportDataset(t)
	defer d.Close()

	var buf bytes.Buffer
	Build(d).Write(&buf)
	out := buf.String()
	if !strings.Contains(out, "movies 2") {
		t.Errorf("missing movie count:\n%s", out)
	}
	if !strings.Contains(out, "1234567.89") {
		t.Errorf("missing gross:\n%s", out)
	}
	if !strings.Contains(out, "Maya Lindholm") {
		t.Errorf("missing director:\n%s", out)
	}
}
