package seed

import (
	"testing"
	"time"

	"runtracker/internal/config"
	"runtracker/internal/database"
	"runtracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsTest())

	db, err := database.Connect(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Where("1 = 1").Delete(&models.Upvote{})
		db.Where("1 = 1").Delete(&models.Post{})
		db.Where("1 = 1").Delete(&models.User{})
	})
	return db
}

func TestFactoryCreateUser(t *testing.T) {
	db := setupTestDB(t)
	factory, err := NewFactory(db)
	require.NoError(t, err)

	user, err := factory.CreateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Contains(t, user.Username, "@")
	assert.NotEqual(t, DemoPassword, user.Password)
	assert.GreaterOrEqual(t, user.Avatar, 0)
	assert.LessOrEqual(t, user.Avatar, 23)
}

func TestFactoryBuildRun(t *testing.T) {
	db := setupTestDB(t)
	factory, err := NewFactory(db)
	require.NoError(t, err)

	user, err := factory.CreateUser()
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		run := factory.BuildRun(user)
		assert.Equal(t, user.ID, run.UserID)
		assert.Greater(t, run.DistanceValue, 0.0)
		assert.NotZero(t, run.DurationHours+run.DurationMinutes+run.DurationSeconds)

		ranDate, err := time.Parse("2006-01-02", run.Date)
		require.NoError(t, err)
		assert.False(t, ranDate.After(time.Now()))

		_, err = time.Parse("15:04", run.Time)
		require.NoError(t, err)
	}
}

func TestSeederRun(t *testing.T) {
	db := setupTestDB(t)
	seeder, err := NewSeeder(db)
	require.NoError(t, err)

	require.NoError(t, seeder.Run(Options{NumUsers: 5, NumRuns: 12, ShouldClean: true}))

	var userCount, runCount, upvoteCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&runCount).Error)
	require.NoError(t, db.Model(&models.Upvote{}).Count(&upvoteCount).Error)

	assert.EqualValues(t, 5, userCount)
	assert.EqualValues(t, 12, runCount)
	assert.Positive(t, upvoteCount)

	// Upvoters are never the run's owner
	var upvotes []models.Upvote
	require.NoError(t, db.Find(&upvotes).Error)
	for _, uv := range upvotes {
		var run models.Post
		require.NoError(t, db.First(&run, uv.PostID).Error)
		assert.NotEqual(t, run.UserID, uv.UserID)
	}
}

func TestSeederClearAll(t *testing.T) {
	db := setupTestDB(t)
	seeder, err := NewSeeder(db)
	require.NoError(t, err)

	require.NoError(t, seeder.Run(Options{NumUsers: 3, NumRuns: 6}))
	require.NoError(t, seeder.ClearAll())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
