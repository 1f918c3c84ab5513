package main

import (
	"flag"
	"log"

	"requestquote/pkg/config"
	"requestquote/pkg/database/postgresql"
	"requestquote/seeders"
)

func main() {
	runAdmin := flag.Bool("admin", false, "seed the back-office admin user")
	runCatalog := flag.Bool("catalog", false, "seed demo products")
	runAll := flag.Bool("all", false, "run all seeders")
	flag.Parse()

	if !*runAdmin && !*runCatalog && !*runAll {
		log.Println("no seeder selected")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("examples:")
		log.Println("  go run ./seeders/cmd/seed -admin")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runCatalog {
		seeders.SeedCatalog(dbPool)
	}
	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool, cfg)
	}
}
