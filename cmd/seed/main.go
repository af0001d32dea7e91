package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Luismorlan/tribe/utils"
	"github.com/Luismorlan/tribe/utils/dotenv"
	"github.com/Luismorlan/tribe/utils/flag"
	. "github.com/Luismorlan/tribe/utils/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd provisions users from a yaml file. Users are created only here, the
// api never creates them.
var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Creates users listed in a yaml file, skipping api keys that exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := dotenv.LoadDotEnvs(); err != nil {
			return err
		}
		*flag.ServiceName = flag.Seeder
		InitLogger()

		users, err := LoadSeedFile(viper.GetString("users"))
		if err != nil {
			return err
		}

		db, err := utils.GetDBConnection()
		if err != nil {
			return err
		}
		if viper.GetBool("migrate") {
			if err := utils.DatabaseSetupAndMigration(db); err != nil {
				return err
			}
		}

		created, err := SeedUsers(context.Background(), db, users)
		if err != nil {
			return err
		}
		Log.WithFields(logrus.Fields{
			"listed":  len(users),
			"created": created,
		}).Info("users seeded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("users", "u", "users.yaml",
		"Path to the yaml file listing users to create")
	viper.BindPFlag("users", rootCmd.PersistentFlags().Lookup("users"))

	rootCmd.PersistentFlags().Bool("migrate", true,
		"Create or update tables before seeding")
	viper.BindPFlag("migrate", rootCmd.PersistentFlags().Lookup("migrate"))

	viper.SetEnvPrefix("seed")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
