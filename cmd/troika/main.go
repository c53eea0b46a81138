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

package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/troika-io/troika/base/log"
	"github.com/troika-io/troika/cf"
	"github.com/troika-io/troika/config"
	"github.com/troika-io/troika/dataset"
	"github.com/troika-io/troika/logics"
)

var version = "0.1.0"

var rootCommand = &cobra.Command{
	Use:   "troika",
	Short: "Trio-completion recommender built on item-item collaborative filtering",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version of troika",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic training corpus from archetype templates",
	Run: func(cmd *cobra.Command, args []string) {
		conf := loadConfig(cmd)
		archetypePath, _ := cmd.Flags().GetString("archetypes")
		catalogPath, _ := cmd.Flags().GetString("catalog")
		outputPath, _ := cmd.Flags().GetString("output")
		archetypes, err := dataset.LoadArchetypes(archetypePath)
		if err != nil {
			log.Logger().Fatal("failed to load archetypes", zap.Error(err))
		}
		catalog, err := dataset.LoadNames(catalogPath)
		if err != nil {
			log.Logger().Fatal("failed to load catalog", zap.Error(err))
		}
		generator, err := dataset.NewGenerator(catalog, archetypes, conf.Generate.Seed)
		if err != nil {
			log.Logger().Fatal("failed to create generator", zap.Error(err))
		}
		groups := make([]dataset.Group, 0, conf.Generate.NumGroups)
		bar := progressbar.Default(int64(conf.Generate.NumGroups), "generate")
		for i := 0; i < conf.Generate.NumGroups; i++ {
			groups = append(groups, generator.Group(conf.Generate.GroupSize))
			_ = bar.Add(1)
		}
		if err = dataset.SaveGroups(outputPath, groups); err != nil {
			log.Logger().Fatal("failed to save corpus", zap.Error(err))
		}
		log.Logger().Info("corpus generated",
			zap.String("path", outputPath), zap.Int("n_groups", len(groups)))
	},
}

var trainCommand = &cobra.Command{
	Use:   "train",
	Short: "Build a collaborative filtering model from a training corpus",
	Run: func(cmd *cobra.Command, args []string) {
		corpusPath, _ := cmd.Flags().GetString("corpus")
		modelPath, _ := cmd.Flags().GetString("model")
		groups, err := dataset.LoadGroups(corpusPath)
		if err != nil {
			log.Logger().Fatal("failed to load corpus", zap.Error(err))
		}
		model, err := cf.Build(groups)
		if err != nil {
			log.Logger().Fatal("failed to build model", zap.Error(err))
		}
		if err = model.Save(modelPath); err != nil {
			log.Logger().Fatal("failed to save model", zap.Error(err))
		}
	},
}

var recommendCommand = &cobra.Command{
	Use:   "recommend ITEM ITEM ITEM",
	Short: "Recommend trios completing a team of 3 items",
	Args:  cobra.ExactArgs(logics.TeamSize),
	Run: func(cmd *cobra.Command, args []string) {
		conf := loadConfig(cmd)
		model := loadModel(cmd)
		topK, _ := cmd.Flags().GetInt("top-k")
		poolSize, _ := cmd.Flags().GetInt("pool-size")
		if !cmd.Flags().Changed("top-k") {
			topK = conf.Recommend.TopK
		}
		if !cmd.Flags().Changed("pool-size") {
			poolSize = conf.Recommend.PoolSize
		}
		recommender := logics.NewTrioRecommender(cf.NewSnapshot(model), conf.Recommend)
		recommendations, err := recommender.Recommend(args, topK, poolSize)
		if err != nil {
			log.Logger().Fatal("failed to recommend", zap.Error(err))
		}
		for i, rec := range recommendations {
			fmt.Printf("%2d. %v\tcf=%.4f\tcohesion=%.4f\tcomposite=%.4f\n",
				i+1, rec.Trio, rec.CFScore, rec.TeamCohesion, rec.CompositeScore)
		}
	},
}

var similarCommand = &cobra.Command{
	Use:   "similar ITEM",
	Short: "List the items most similar to an item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		model := loadModel(cmd)
		topK, _ := cmd.Flags().GetInt("top-k")
		for i, score := range model.SimilarItems(args[0], topK) {
			fmt.Printf("%2d. %s\t%.4f\n", i+1, score.Name, score.Score)
		}
	},
}

var popularCommand = &cobra.Command{
	Use:   "popular",
	Short: "List the most frequent items in the training corpus",
	Run: func(cmd *cobra.Command, args []string) {
		model := loadModel(cmd)
		topK, _ := cmd.Flags().GetInt("top-k")
		for i, score := range model.Popular(topK) {
			fmt.Printf("%2d. %s\t%d\n", i+1, score.Name, int(score.Score))
		}
	},
}

func loadConfig(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	conf, err := config.LoadConfig(path)
	if err != nil {
		log.Logger().Fatal("failed to load config", zap.Error(err))
	}
	return conf
}

func loadModel(cmd *cobra.Command) *cf.Model {
	path, _ := cmd.Flags().GetString("model")
	model, err := cf.Load(path)
	if err != nil {
		log.Logger().Fatal("failed to load model", zap.Error(err))
	}
	return model
}

func init() {
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().String("config", "", "path of configuration file")
	log.AddFlags(rootCommand.PersistentFlags())

	generateCommand.Flags().String("archetypes", "data/archetypes.json", "path of archetype templates")
	generateCommand.Flags().String("catalog", "data/catalog.json", "path of catalog document")
	generateCommand.Flags().String("output", "data/corpus.json", "path of generated corpus")

	trainCommand.Flags().String("corpus", "data/corpus.json", "path of training corpus")
	trainCommand.Flags().String("model", "models/cf_model.json", "path of model dump")

	recommendCommand.Flags().String("model", "models/cf_model.json", "path of model dump")
	recommendCommand.Flags().Int("top-k", config.DefaultTopK, "number of recommendations")
	recommendCommand.Flags().Int("pool-size", config.DefaultPoolSize, "size of the candidate pool")

	similarCommand.Flags().String("model", "models/cf_model.json", "path of model dump")
	similarCommand.Flags().Int("top-k", config.DefaultTopK, "number of similar items")

	popularCommand.Flags().String("model", "models/cf_model.json", "path of model dump")
	popularCommand.Flags().Int("top-k", config.DefaultTopK, "number of popular items")

	rootCommand.AddCommand(versionCommand, generateCommand, trainCommand,
		recommendCommand, similarCommand, popularCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
