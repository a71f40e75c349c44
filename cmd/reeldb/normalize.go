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

	"github.com/reeldb/reeldb/imdb"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "run the cleaning pipeline",
	Long: `Coerce gross income, rebuild the country/language membership tables
and standardize missing values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return normalize()
	},
}

func normalize() error {
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

	err = d.Normalize()
	if err != nil {
		return err
	}

	run, err := d.LastRun()
	if err != nil {
		return err
	}
	fmt.Printf("movies %d\n", run.Movies)
	fmt.Printf("countries %d\n", run.Countries)
	fmt.Printf("languages %d\n", run.Languages)
	fmt.Printf("took %s\n", run.FinishedAt.Sub(run.StartedAt))
	return nil
}

func init() {
	normalizeCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.AddCommand(normalizeCmd)
}
