// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"runtracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the shared password for every seeded account.
const DemoPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
	// hash is computed once; bcrypt per user would dominate seeding time
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	return &Factory{
		db:           db,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordHash: string(hash),
	}, nil
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	user := &models.User{
		Name:        first + " " + last,
		DisplayName: first,
		Username:    fmt.Sprintf("%s.%s%d@example.com", first, last, gofakeit.Number(100, 999)),
		Password:    f.passwordHash,
		Avatar:      f.rand.Intn(24),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

var runTitles = []string{
	"Morning run", "Easy shakeout", "Tempo Tuesday", "Long run Sunday",
	"Track intervals", "Hill repeats", "Recovery jog", "Parkrun",
	"Lunch loop", "Night run", "Trail miles", "Progression run",
}

// BuildRun constructs a plausible run for the given user without persisting
// it. Useful for batching.
func (f *Factory) BuildRun(user *models.User, overrides ...func(*models.Post)) *models.Post {
	units := []string{models.UnitMiles, models.UnitKilometers, models.UnitMeters, models.UnitYards}
	unit := units[f.rand.Intn(len(units))]

	var distance float64
	switch unit {
	case models.UnitMeters:
		distance = float64(f.rand.Intn(9000) + 1000)
	case models.UnitYards:
		distance = float64(f.rand.Intn(9000) + 1000)
	default:
		distance = float64(f.rand.Intn(200)+10) / 10.0
	}

	runType := models.RunTypeWorkout
	if f.rand.Intn(10) == 0 {
		runType = models.RunTypeRace
	}

	// spread runs over the past 90 days, always in the past
	ran := time.Now().Add(-time.Duration(f.rand.Intn(90*24)+1) * time.Hour)

	post := &models.Post{
		Title:           runTitles[f.rand.Intn(len(runTitles))],
		DistanceValue:   distance,
		DistanceUnit:    unit,
		DurationHours:   f.rand.Intn(3),
		DurationMinutes: f.rand.Intn(60),
		DurationSeconds: f.rand.Intn(60),
		RunType:         runType,
		Date:            ran.Format("2006-01-02"),
		Time:            ran.Format("15:04"),
		Description:     gofakeit.Paragraph(1, 2, 8, " "),
		Privacy:         models.PrivacyPublic,
		UserID:          user.ID,
		CreatedAt:       ran,
	}
	if post.DurationHours == 0 && post.DurationMinutes == 0 {
		post.DurationMinutes = f.rand.Intn(50) + 10
	}

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreateRunsBatch persists multiple runs in a single DB call.
func (f *Factory) CreateRunsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateUpvote records an upvote, ignoring duplicates.
func (f *Factory) CreateUpvote(userID, postID uint) error {
	upvote := &models.Upvote{UserID: userID, PostID: postID}
	err := f.db.Create(upvote).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

func isDuplicate(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
