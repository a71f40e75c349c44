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
	"os"

	"github.com/reeldb/reeldb/imdb"
	"github.com/reeldb/reeldb/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "reeldb dataset stats",
	Long:  `Print aggregate reports over the normalized snapshot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stats()
	},
}

func stats() error {
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

	report.Build(d).Write(os.Stdout)
	return nil
}

func init() {
	statsCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.AddCommand(statsCmd)
}
