// Copyright 2026 troika Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Default values for the recommender. The composite weights come from the
// scoring formula: composite = cf_weight * cf + cohesion_weight * cohesion.
const (
	DefaultCFWeight       = 0.7
	DefaultCohesionWeight = 0.3
	DefaultTopK           = 5
	DefaultPoolSize       = 20
	DefaultMaxPoolSize    = 20
	DefaultNumGroups      = 1500
	DefaultGroupSize      = 6
)

// Config is the configuration for the engine.
type Config struct {
	Recommend RecommendConfig `mapstructure:"recommend"`
	Generate  GenerateConfig  `mapstructure:"generate"`
}

// RecommendConfig is the configuration for the trio recommender.
type RecommendConfig struct {
	CFWeight       float64 `mapstructure:"cf_weight" validate:"gte=0,lte=1"`
	CohesionWeight float64 `mapstructure:"cohesion_weight" validate:"gte=0,lte=1"`
	TopK           int     `mapstructure:"top_k" validate:"gte=0"`
	PoolSize       int     `mapstructure:"pool_size" validate:"gte=0"`
	// MaxPoolSize bounds the combinatorial search: C(pool, 3) trios are
	// evaluated per query.
	MaxPoolSize int `mapstructure:"max_pool_size" validate:"gt=0"`
}

// GenerateConfig is the configuration for the synthetic corpus generator.
type GenerateConfig struct {
	NumGroups int   `mapstructure:"num_groups" validate:"gt=0"`
	GroupSize int   `mapstructure:"group_size" validate:"gte=3"`
	Seed      int64 `mapstructure:"seed"`
}

func setDefault() {
	viper.SetDefault("recommend.cf_weight", DefaultCFWeight)
	viper.SetDefault("recommend.cohesion_weight", DefaultCohesionWeight)
	viper.SetDefault("recommend.top_k", DefaultTopK)
	viper.SetDefault("recommend.pool_size", DefaultPoolSize)
	viper.SetDefault("recommend.max_pool_size", DefaultMaxPoolSize)
	viper.SetDefault("generate.num_groups", DefaultNumGroups)
	viper.SetDefault("generate.group_size", DefaultGroupSize)
	viper.SetDefault("generate.seed", 0)
}

// LoadConfig loads configuration from a TOML file. An empty path loads the
// defaults.
func LoadConfig(path string) (*Config, error) {
	viper.Reset()
	setDefault()
	var conf Config
	if path != "" {
		viper.SetConfigType("toml")
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

// Validate checks field bounds and cross-field constraints.
func (config *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return errors.Trace(err)
	}
	if math.Abs(config.Recommend.CFWeight+config.Recommend.CohesionWeight-1) > 1e-9 {
		return errors.NotValidf("composite weights %v + %v do not sum to 1",
			config.Recommend.CFWeight, config.Recommend.CohesionWeight)
	}
	if config.Recommend.PoolSize > config.Recommend.MaxPoolSize {
		return errors.NotValidf("pool_size %d exceeds max_pool_size %d",
			config.Recommend.PoolSize, config.Recommend.MaxPoolSize)
	}
	return nil
}
