package clerkwebhooks

import (
	"testing"

	"scriptpilot/database"
	"scriptpilot/internal/domain/ideas"
	"scriptpilot/internal/domain/profiles"
	"scriptpilot/internal/domain/reviews"
	"scriptpilot/internal/domain/scripts"
	"scriptpilot/internal/domain/settings"
	"scriptpilot/internal/domain/subscriptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func userWithEmail(id, email string) clerkUserData {
	return clerkUserData{
		ID:                    id,
		FirstName:             "Ada",
		LastName:              "Lovelace",
		PrimaryEmailAddressID: "email_1",
		EmailAddresses:        []clerkEmailAddress{{ID: "email_1", EmailAddress: email}},
	}
}

func TestApplyUserCreatedUpsertsProfile(t *testing.T) {
	db := testDB(t)

	require.NoError(t, applyUserCreated(db, userWithEmail("user_1", "ada@example.com")))

	var row profiles.UserProfile
	require.NoError(t, db.Where("owner_id = ?", "user_1").First(&row).Error)
	assert.Equal(t, "ada@example.com", row.Email)
	assert.Equal(t, "Ada", row.FirstName)
}

func TestApplyUserCreatedRedeliveryKeepsOneRow(t *testing.T) {
	db := testDB(t)

	require.NoError(t, applyUserCreated(db, userWithEmail("user_1", "ada@example.com")))
	require.NoError(t, applyUserCreated(db, userWithEmail("user_1", "ada@new.example.com")))

	var count int64
	require.NoError(t, db.Model(&profiles.UserProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var row profiles.UserProfile
	require.NoError(t, db.Where("owner_id = ?", "user_1").First(&row).Error)
	assert.Equal(t, "ada@new.example.com", row.Email)
}

func TestApplyUserCreatedWithoutEmailFails(t *testing.T) {
	db := testDB(t)
	assert.Error(t, applyUserCreated(db, clerkUserData{ID: "user_1"}))
}

func TestApplyUserUpdatedMissingRowIsTolerated(t *testing.T) {
	db := testDB(t)
	assert.NoError(t, applyUserUpdated(db, userWithEmail("user_ghost", "ghost@example.com")))
}

func TestApplyUserUpdatedOverwritesFields(t *testing.T) {
	db := testDB(t)
	require.NoError(t, applyUserCreated(db, userWithEmail("user_1", "ada@example.com")))

	updated := userWithEmail("user_1", "ada@example.com")
	updated.FirstName = "Augusta"
	require.NoError(t, applyUserUpdated(db, updated))

	var row profiles.UserProfile
	require.NoError(t, db.Where("owner_id = ?", "user_1").First(&row).Error)
	assert.Equal(t, "Augusta", row.FirstName)
}

func TestApplyUserDeletedCascades(t *testing.T) {
	db := testDB(t)
	require.NoError(t, applyUserCreated(db, userWithEmail("user_1", "ada@example.com")))
	require.NoError(t, db.Create(&ideas.Idea{OwnerID: "user_1", Title: "Hook experiments"}).Error)
	require.NoError(t, db.Create(&scripts.Script{OwnerID: "user_1", Title: "Episode 1"}).Error)
	require.NoError(t, db.Create(&reviews.Review{OwnerID: "user_1", ScriptID: "script_1"}).Error)
	require.NoError(t, db.Create(&settings.UserSettings{OwnerID: "user_1"}).Error)
	require.NoError(t, db.Create(&subscriptions.Subscription{OwnerID: "user_1", StripeSubscriptionID: "sub_1"}).Error)

	// Another owner's rows must survive the cascade.
	require.NoError(t, applyUserCreated(db, userWithEmail("user_2", "grace@example.com")))
	require.NoError(t, db.Create(&scripts.Script{OwnerID: "user_2", Title: "Episode 2"}).Error)

	require.NoError(t, applyUserDeleted(db, "user_1"))

	for _, model := range []interface{}{
		&reviews.Review{}, &ideas.Idea{}, &settings.UserSettings{}, &subscriptions.Subscription{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("owner_id = ?", "user_1").Count(&count).Error)
		assert.Zero(t, count, "%T rows left behind", model)
	}

	var scriptCount int64
	require.NoError(t, db.Model(&scripts.Script{}).Count(&scriptCount).Error)
	assert.EqualValues(t, 1, scriptCount)

	var profileCount int64
	require.NoError(t, db.Model(&profiles.UserProfile{}).Count(&profileCount).Error)
	assert.EqualValues(t, 1, profileCount)
}
