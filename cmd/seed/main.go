// Command seed populates the database with demo users and health
// profiles for local development.
package main

import (
	"flag"
	"log"

	"nutriplan/internal/config"
	"nutriplan/internal/database"
	"nutriplan/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	withProfiles := flag.Float64("with-profiles", 0.8, "Fraction of users that get a health profile")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Printf("Seeding %d users (%.0f%% with profiles), clean=%v\n", *numUsers, *withProfiles*100, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:     *numUsers,
		WithProfiles: *withProfiles,
		ShouldClean:  *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeding complete. All seeded accounts use password %q.\n", seed.SeedPassword)
}
