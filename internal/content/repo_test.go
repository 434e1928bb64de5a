package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
)

func setupContentTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	heroSlides := `
CREATE TABLE IF NOT EXISTS hero_slides (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  image_url TEXT NOT NULL,
  title TEXT NOT NULL,
  subtitle TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  sort_order INTEGER NOT NULL DEFAULT 0
);`
	galleryImages := `
CREATE TABLE IF NOT EXISTS gallery_images (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  image_url TEXT NOT NULL,
  caption TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  sort_order INTEGER NOT NULL DEFAULT 0
);`
	shifts := `
CREATE TABLE IF NOT EXISTS shifts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  icon TEXT NOT NULL DEFAULT 'fa-clock',
  time_slot TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  sort_order INTEGER NOT NULL DEFAULT 0
);`
	facilities := `
CREATE TABLE IF NOT EXISTS facilities (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  icon TEXT NOT NULL DEFAULT 'fa-check',
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  sort_order INTEGER NOT NULL DEFAULT 0
);`

	for _, table := range []string{"hero_slides", "gallery_images", "shifts", "facilities"} {
		require.NoError(t, db.Exec("DROP TABLE IF EXISTS "+table).Error)
	}
	require.NoError(t, db.Exec(heroSlides).Error)
	require.NoError(t, db.Exec(galleryImages).Error)
	require.NoError(t, db.Exec(shifts).Error)
	require.NoError(t, db.Exec(facilities).Error)
	return db
}

func TestRepository_ListSlidesOrdering(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	second := models.HeroSlide{ImageURL: "b", Title: "b", IsActive: true, SortOrder: 2}
	firstTie := models.HeroSlide{ImageURL: "a1", Title: "a1", IsActive: true, SortOrder: 1}
	secondTie := models.HeroSlide{ImageURL: "a2", Title: "a2", IsActive: true, SortOrder: 1}
	require.NoError(t, repo.CreateSlide(ctx, &second))
	require.NoError(t, repo.CreateSlide(ctx, &firstTie))
	require.NoError(t, repo.CreateSlide(ctx, &secondTie))

	rows, err := repo.ListSlides(ctx, false)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// sort_order ascending, insertion order breaking ties
	assert.Equal(t, firstTie.ID, rows[0].ID)
	assert.Equal(t, secondTie.ID, rows[1].ID)
	assert.Equal(t, second.ID, rows[2].ID)
}

func TestRepository_ListSlidesActiveFilter(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	active := models.HeroSlide{ImageURL: "a", Title: "a", IsActive: true}
	hidden := models.HeroSlide{ImageURL: "h", Title: "h", IsActive: false}
	require.NoError(t, repo.CreateSlide(ctx, &active))
	require.NoError(t, repo.CreateSlide(ctx, &hidden))

	rows, err := repo.ListSlides(ctx, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, active.ID, rows[0].ID)

	all, err := repo.ListSlides(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_UpdateSlideWritesFields(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	slide := models.HeroSlide{ImageURL: "a", Title: "a", IsActive: true, SortOrder: 1}
	require.NoError(t, repo.CreateSlide(ctx, &slide))

	fields := map[string]any{
		"image_url":  "a2",
		"title":      "a2",
		"subtitle":   "",
		"is_active":  false,
		"sort_order": 9,
	}
	require.NoError(t, repo.UpdateSlide(ctx, slide.ID, fields))

	var got models.HeroSlide
	require.NoError(t, db.First(&got, slide.ID).Error)
	assert.Equal(t, "a2", got.ImageURL)
	assert.False(t, got.IsActive)
	assert.Equal(t, 9, got.SortOrder)
}

func TestRepository_DeleteSlideIdempotent(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	slide := models.HeroSlide{ImageURL: "a", Title: "a", IsActive: true}
	require.NoError(t, repo.CreateSlide(ctx, &slide))

	require.NoError(t, repo.DeleteSlide(ctx, slide.ID))
	// a second delete of the same id is not an error
	require.NoError(t, repo.DeleteSlide(ctx, slide.ID))

	rows, err := repo.ListSlides(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRepository_GalleryRoundTrip(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	image := models.GalleryImage{ImageURL: "g", Caption: "reading hall", IsActive: true}
	require.NoError(t, repo.CreateGalleryImage(ctx, &image))
	require.NotZero(t, image.ID)

	rows, err := repo.ListGalleryImages(ctx, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "reading hall", rows[0].Caption)

	require.NoError(t, repo.UpdateGalleryImage(ctx, image.ID, map[string]any{"is_active": false}))
	rows, err = repo.ListGalleryImages(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRepository_ShiftsAndFacilities(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	shift := models.Shift{Icon: "fa-sun", TimeSlot: "6 AM - 12 PM", IsActive: true, SortOrder: 1}
	require.NoError(t, repo.CreateShift(ctx, &shift))

	facility := models.Facility{Icon: "fa-wifi", Title: "WiFi", IsActive: true}
	require.NoError(t, repo.CreateFacility(ctx, &facility))

	shiftRows, err := repo.ListShifts(ctx, true)
	require.NoError(t, err)
	require.Len(t, shiftRows, 1)
	assert.Equal(t, "6 AM - 12 PM", shiftRows[0].TimeSlot)

	facilityRows, err := repo.ListFacilities(ctx, true)
	require.NoError(t, err)
	require.Len(t, facilityRows, 1)

	require.NoError(t, repo.DeleteShift(ctx, shift.ID))
	require.NoError(t, repo.DeleteFacility(ctx, facility.ID))

	shiftRows, err = repo.ListShifts(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, shiftRows)
}
