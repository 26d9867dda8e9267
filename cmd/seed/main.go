// Command seed populates the development database with generated users.
package main

import (
	"flag"
	"log"

	"userapi/internal/config"
	"userapi/internal/database"
	"userapi/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "number of fake users to create")
	withSamples := flag.Bool("samples", true, "also insert the canonical sample users into an empty database")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *withSamples {
		if err := seed.EnsureSampleData(db); err != nil {
			log.Fatalf("Sample data seeding failed: %v", err)
		}
	}

	factory := seed.NewFactory(db)
	users, err := factory.CreateUsers(*numUsers)
	if err != nil {
		log.Fatalf("Seeding failed after %d users: %v", len(users), err)
	}

	log.Printf("Seeded %d users", len(users))
}
