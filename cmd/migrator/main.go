package main

import (
	"context"
	"flag"
	"log"

	"github.com/aanand-mishra/employees-api/internal/config"
	"github.com/aanand-mishra/employees-api/internal/storage/postgres"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	configPath := flag.String("config", "", "Path to the configuration YAML file")
	dir := flag.String("dir", "migrations", "Directory with goose SQL migrations")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	if cfg.Storage.Driver != config.DriverPostgres {
		log.Fatalf("migrations target PostgreSQL, storage driver is %q", cfg.Storage.Driver)
	}

	pg := cfg.Storage.Postgres
	dbpool, dbErr := postgres.NewDatabase(context.Background(), pg.Host, pg.Port, pg.User, pg.Password, pg.Dbname)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}
	if migrationErr := goose.Up(dtb, *dir); migrationErr != nil {
		log.Fatal(migrationErr)
	}

	log.Println("Migrations applied successfully")
}
