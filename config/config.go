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

package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver  string
	Source  string
	LogMode bool
}

type DatasetConfig struct {
	DB              DatabaseConfig
	CSVDir          string
	MembershipLimit int
	Sentinel        string
	SearchLimit     int
}

type SearchConfig struct {
	BleveDir string
}

type Config struct {
	DataDir string
	Dataset DatasetConfig
	Search  SearchConfig
}

func configDefaults(v *viper.Viper) {
	v.SetDefault("DataDir", ".")

	v.SetDefault("Dataset.DB.Driver", "sqlite3")
	v.SetDefault("Dataset.DB.Source", "imdb.db")
	v.SetDefault("Dataset.DB.LogMode", "false")
	v.SetDefault("Dataset.CSVDir", ".")
	v.SetDefault("Dataset.MembershipLimit", "3")
	v.SetDefault("Dataset.Sentinel", "Unknown")
	v.SetDefault("Dataset.SearchLimit", "100")

	v.SetDefault("Search.BleveDir", ".")
}

func readConfig(v *viper.Viper) (*Config, error) {
	var config Config
	var pathRegexp = regexp.MustCompile(`(file|dir|source)$`)
	err := v.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
		// defaults only
		err = nil
	}
	dir := filepath.Dir(v.ConfigFileUsed())
	if dir != "" && dir != "." {
		for _, k := range v.AllKeys() {
			if pathRegexp.MatchString(k) {
				val := v.Get(k)
				if strings.HasPrefix(val.(string), "/") == false {
					val = fmt.Sprintf("%s/%s", dir, val.(string))
					v.Set(k, val)
				}
			}
		}
	}
	if err == nil {
		err = v.Unmarshal(&config)
	}
	return &config, err
}

var configFile, configPath, configName string

func SetConfigFile(path string) {
	configFile = path
}

func AddConfigPath(path string) {
	configPath = path
}

func SetConfigName(name string) {
	configName = name
}

func GetConfig() (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName != "" {
		v.SetConfigName(configName)
	} else {
		v.SetConfigName("reeldb")
	}
	if configFile == "" && configPath == "" {
		v.AddConfigPath(".")
	}
	configDefaults(v)
	return readConfig(v)
}

func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("reeldb")
	configDefaults(v)
	return readConfig(v)
}

// Config for tests with an in-memory database and search disabled.
// Each name gets its own shared-cache database so tests don't step on
// each other.
func TestConfig(name string) (*Config, error) {
	v := viper.New()
	configDefaults(v)
	v.Set("Dataset.DB.Source",
		fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	v.Set("Search.BleveDir", "")
	var config Config
	err := v.Unmarshal(&config)
	return &config, err
}
