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

package main

import (
	"fmt"
	"strings"

	"github.com/reeldb/reeldb/imdb"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "search the movie index",
	Long:  `Query the bleve index, e.g. +genre:Drama +country:USA.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(strings.Join(args, " "))
	},
}

func runSearch(q string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	d := imdb.NewDataset(cfg)
	err = d.Open()
	if err != nil {
		return err
	}
	defer d.Close()

	for _, m := range d.Search(q) {
		fmt.Printf("%s (%d) %s\n", m.Title, m.Year, m.MID)
	}
	return nil
}

func init() {
	searchCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.AddCommand(searchCmd)
}
