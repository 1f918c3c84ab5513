package main

import (
	"database/sql"
	"flag"
	"log"

	"requestquote/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// The down direction drops the quote tables. When the deployment is
// configured to retain data on uninstall, a plain "down" is refused and
// -force is required.
func main() {
	dir := flag.String("dir", "./migrations", "directory with migration files")
	force := flag.Bool("force", false, "allow destructive down migrations even when data retention is configured")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg := config.New()

	if (command == "down" || command == "down-to" || command == "reset") && cfg.RetainDataOnUninstall && !*force {
		log.Fatalf("refusing %q: data retention is enabled (REQUESTQUOTE_RETAIN_DATA). Re-run with -force to drop the tables.", command)
	}

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	args := flag.Args()
	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}
	if err := goose.Run(command, db, *dir, cmdArgs...); err != nil {
		log.Fatalf("goose %s failed: %v", command, err)
	}
	log.Printf("goose %s: OK", command)
}
