// Command seed loads reference data and the admin account into the database
// without starting the server.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"cropcare/config"
	"cropcare/database"
	"cropcare/pkg/logging"
	"cropcare/pkg/reftable"
	"cropcare/pkg/upload"

	authSvcImp "cropcare/pkg/auth/serviceImp"
	cropRepoImp "cropcare/pkg/crop/repositoryImp"
	cropSvcImp "cropcare/pkg/crop/serviceImp"
	soilRepoImp "cropcare/pkg/soil/repositoryImp"
	userRepoImp "cropcare/pkg/user/repositoryImp"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if err := newApp(cfg).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func forceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "force",
		Usage: "Insert even when the table already has rows",
	}
}

func newApp(cfg config.AppConfig) *cli.Command {
	var db *gorm.DB
	return &cli.Command{
		Name:  "seed",
		Usage: "Load soil, crop and admin data",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "driver", Value: cfg.DBDriver, Usage: "sqlite, postgres or mysql"},
			&cli.StringFlag{Name: "db", Value: cfg.DBPath, Usage: "sqlite database file"},
			&cli.StringFlag{Name: "dsn", Value: cfg.DBDSN, Usage: "postgres/mysql DSN"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			var err error
			db, err = database.Open(cmd.String("driver"), cmd.String("db"), cmd.String("dsn"))
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			if db == nil {
				return nil
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
		Commands: []*cli.Command{
			{
				Name:  "soil",
				Usage: "Load the soil range table (built-in Tamil Nadu table unless --file is given)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: cfg.SoilSeedFile, Usage: ".csv or .xlsx soil table"},
					forceFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					n, err := reftable.SeedSoil(ctx, soilRepoImp.New(db), cmd.String("file"), cmd.Bool("force"))
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.Root().Writer, "soil rows inserted: %d\n", n)
					return nil
				},
			},
			{
				Name:  "crops",
				Usage: "Import crop ranges from a .csv or .xlsx file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: cfg.CropSeedFile, Usage: ".csv or .xlsx crop table"},
					forceFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					file := cmd.String("file")
					if file == "" {
						return fmt.Errorf("--file is required")
					}
					svc := cropSvcImp.NewCropService(cropRepoImp.New(db), upload.NewLocal(cfg.StaticDir))
					n, err := reftable.SeedCrops(ctx, svc, file, cmd.Bool("force"))
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.Root().Writer, "crop rows inserted: %d\n", n)
					return nil
				},
			},
			{
				Name:  "admin",
				Usage: "Create the admin account, or reset its password with --reset",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Value: cfg.AdminUsername},
					&cli.StringFlag{Name: "password", Value: cfg.AdminPassword},
					&cli.BoolFlag{Name: "reset", Usage: "Overwrite the password of an existing admin"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					svc := authSvcImp.NewAuthService(userRepoImp.New(db), userRepoImp.NewAdmin(db))
					created, err := svc.EnsureAdmin(ctx, cmd.String("username"), cmd.String("password"), cmd.Bool("reset"))
					if err != nil {
						return err
					}
					state := "exists"
					switch {
					case created:
						state = "created"
					case cmd.Bool("reset"):
						state = "password reset"
					}
					fmt.Fprintf(cmd.Root().Writer, "admin %s: %s\n", cmd.String("username"), state)
					return nil
				},
			},
		},
	}
}
