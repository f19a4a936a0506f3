package db

import (
	"dinefind-server/model"
	"errors"
	"gorm.io/gorm"
	"testing"
)

func TestGetUserByEmailMissing(t *testing.T) {
	testDB := setupTestDB(t)
	userDAO := NewUserDAO(testDB)

	user, err := userDAO.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("lookup of a missing email must not error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestUpdateUserAndProfile(t *testing.T) {
	testDB := setupTestDB(t)
	userDAO := NewUserDAO(testDB)

	user := createTestUser(t, testDB, "carol")
	user.Profile = model.Profile{
		Location:    "Zurich",
		PhoneNumber: "+41791234567",
		ThingsLove:  "pasta",
	}

	// first update creates the profile row
	if err := userDAO.UpdateUserAndProfile(user); err != nil {
		t.Fatalf("update should succeed: %v", err)
	}

	stored, err := userDAO.GetUserById(user.UserID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if stored.Profile.Location != "Zurich" {
		t.Fatalf("expected location persisted, got %q", stored.Profile.Location)
	}

	// second update rewrites it in place
	stored.Profile.Location = "Bern"
	if err := userDAO.UpdateUserAndProfile(stored); err != nil {
		t.Fatalf("update should succeed: %v", err)
	}
	reloaded, err := userDAO.GetUserById(user.UserID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if reloaded.Profile.Location != "Bern" {
		t.Fatalf("expected updated location, got %q", reloaded.Profile.Location)
	}
	if reloaded.Profile.ThingsLove != "pasta" {
		t.Fatalf("untouched profile field lost: %q", reloaded.Profile.ThingsLove)
	}
}

func TestUpdateUserAndProfileDuplicateEmail(t *testing.T) {
	testDB := setupTestDB(t)
	userDAO := NewUserDAO(testDB)

	alice := createTestUser(t, testDB, "alice")
	bob := createTestUser(t, testDB, "bob")

	// the lookup locates the current holder of an email
	existing, err := userDAO.GetUserByEmail(alice.Email)
	if err != nil {
		t.Fatalf("lookup should succeed: %v", err)
	}
	if existing == nil || existing.UserID != alice.UserID {
		t.Fatalf("expected alice to hold %q, got %+v", alice.Email, existing)
	}

	// keeping the own email is a no-op update
	alice.Profile = model.Profile{Location: "Milan"}
	if err := userDAO.UpdateUserAndProfile(alice); err != nil {
		t.Fatalf("update with unchanged email should succeed: %v", err)
	}

	// taking another user's email trips the unique index inside the
	// transaction even when no prior lookup ran
	bob.Email = alice.Email
	bob.Profile = model.Profile{Location: "Turin"}
	err = userDAO.UpdateUserAndProfile(bob)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}

	// bob's stored email is untouched
	stored, err := userDAO.GetUserById(bob.UserID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if stored.Email != "bob@example.com" {
		t.Fatalf("expected email unchanged, got %q", stored.Email)
	}
}
