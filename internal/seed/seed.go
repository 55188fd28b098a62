package seed

import (
	"fmt"
	"log"

	"runtracker/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumRuns     int
	ShouldClean bool
}

// Seeder populates the database with demo users, runs and upvotes.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given DB.
func NewSeeder(db *gorm.DB) (*Seeder, error) {
	factory, err := NewFactory(db)
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, factory: factory}, nil
}

// ClearAll removes all seeded data. Upvotes go first so foreign keys never
// dangle mid-cleanup.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{&models.Upvote{}, &models.Post{}, &models.User{}} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds users, then distributes runs and upvotes across them.
func (s *Seeder) Run(opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumRuns <= 0 {
		opts.NumRuns = 100
	}

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	runs := make([]*models.Post, 0, opts.NumRuns)
	for i := 0; i < opts.NumRuns; i++ {
		owner := users[i%len(users)]
		runs = append(runs, s.factory.BuildRun(owner))
	}
	if err := s.factory.CreateRunsBatch(runs); err != nil {
		return fmt.Errorf("create runs: %w", err)
	}
	log.Printf("Created %d runs", len(runs))

	// Roughly a third of the runs get a few upvotes each.
	upvotes := 0
	for i, run := range runs {
		if i%3 != 0 {
			continue
		}
		for j := 0; j < 3 && j < len(users); j++ {
			voter := users[(i+j+1)%len(users)]
			if voter.ID == run.UserID {
				continue
			}
			if err := s.factory.CreateUpvote(voter.ID, run.ID); err != nil {
				return fmt.Errorf("create upvote: %w", err)
			}
			upvotes++
		}
	}
	log.Printf("Created %d upvotes", upvotes)

	return nil
}
