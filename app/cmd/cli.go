package cmd

import (
	"context"
	"log"
	"os"

	"github.com/artesania/artesania-api/app/configs"
	"github.com/artesania/artesania-api/app/db/seeders"
	"github.com/artesania/artesania-api/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(configs.LoadEnv())
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Populate the database with demo artists and products",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(configs.LoadEnv())
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("seeding complete")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
