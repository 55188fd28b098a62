// Command main runs the database seeder for the Run Tracker.
package main

import (
	"flag"
	"log"

	"runtracker/internal/bootstrap"
	"runtracker/internal/config"
	"runtracker/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numRuns := flag.Int("runs", 100, "Number of runs to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d runs, clean=%v\n", *numUsers, *numRuns, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	seeder, err := seed.NewSeeder(db)
	if err != nil {
		log.Fatalf("Failed to create seeder: %v", err)
	}

	if err := seeder.Run(seed.Options{
		NumUsers:    *numUsers,
		NumRuns:     *numRuns,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Demo accounts share the password:", seed.DemoPassword)
}
