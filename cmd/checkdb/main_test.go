package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/platepal/backend/internal/models"
	"github.com/pageza/platepal/backend/internal/testhelpers"
)

func TestReport(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "Jane Doe", "jane@example.com")
	require.NoError(t, db.Create(&models.BookmarkedRecipe{
		UserID:         user.ID,
		Title:          "Tomato Soup",
		ReadyInMinutes: testhelpers.IntPtr(30),
	}).Error)

	var out bytes.Buffer
	require.NoError(t, report(db, &out))

	text := out.String()
	assert.Contains(t, text, "users")
	assert.Contains(t, text, "jane@example.com")
	assert.Contains(t, text, "Tomato Soup")
	assert.Contains(t, text, "N/A")
	assert.Contains(t, text, "Bookmarked Restaurants:")
}

func TestReportKeepsEarlierRowsOnFailure(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	testhelpers.CreateTestUser(t, db, "Jane Doe", "jane@example.com")
	require.NoError(t, db.Migrator().DropTable(&models.BookmarkedRestaurant{}))

	var out bytes.Buffer
	err := report(db, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restaurant bookmarks")
	assert.Contains(t, out.String(), "jane@example.com")
	assert.Contains(t, out.String(), "Bookmarked Recipes:")
}
