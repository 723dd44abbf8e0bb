// Command migrate applies the albums schema used by the postgres store.
package main

import (
	"flag"
	"fmt"
	"log"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	db   = flag.String("database", "redis_music", "")
	host = flag.String("host", "localhost:5432", "")
	user = flag.String("user", "postgres", "")
	pass = flag.String("password", "", "")
	down = flag.Bool("down", false, "roll back every migration instead of applying them")
)

func main() {
	flag.Parse()
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", *user, *pass, *host, *db)
	m, err := migrate.New("file://db/migrations", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		log.Fatal(err)
	}
}
