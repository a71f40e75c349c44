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

	"github.com/manifoldco/promptui"
	"github.com/reeldb/reeldb/imdb"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "load the dataset CSV exports",
	Long:  `Replace the source tables with the CSV files in the dataset directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return load()
	},
}

var csvDir string
var promptPassword bool

func load() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	if csvDir != "" {
		cfg.Dataset.CSVDir = csvDir
	}
	if promptPassword {
		// the DSN carries a %s placeholder for the password
		prompt := promptui.Prompt{
			Label: "Database password",
			Mask:  '*',
		}
		password, err := prompt.Run()
		if err != nil {
			return err
		}
		cfg.Dataset.DB.Source = fmt.Sprintf(cfg.Dataset.DB.Source, password)
	}

	d := imdb.NewDataset(cfg)
	err = d.Open()
	if err != nil {
		return err
	}
	defer d.Close()
	err = d.Load()
	if err != nil {
		return err
	}
	fmt.Printf("loaded %d movies\n", d.MovieCount())
	return nil
}

func init() {
	loadCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	loadCmd.Flags().StringVarP(&csvDir, "dir", "d", "", "dataset CSV directory")
	loadCmd.Flags().BoolVarP(&promptPassword, "prompt-password", "p", false,
		"prompt for the database password")
	rootCmd.AddCommand(loadCmd)
}
