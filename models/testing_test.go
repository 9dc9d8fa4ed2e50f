package models

import (
	"path/filepath"
	"testing"

	"swapi/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the process-wide handle at a throwaway SQLite file and
// runs the migrations.
func setupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("cannot open test DB: %v", err)
	}
	db.Instance = gdb
	Init()
}

func createTestUser(t *testing.T, email string) User {
	t.Helper()
	user, err := UserCreate(email, "secret")
	if err != nil {
		t.Fatalf("cannot create user %s: %v", email, err)
	}
	return user
}

func createTestPlanet(t *testing.T, name string) Planet {
	t.Helper()
	planet := Planet{Name: name, Diameter: "10465", Climate: "arid", Population: "200000"}
	if err := db.Instance.Create(&planet).Error; err != nil {
		t.Fatalf("cannot create planet %s: %v", name, err)
	}
	return planet
}

func createTestPerson(t *testing.T, name string) Person {
	t.Helper()
	person := Person{Name: name, BirthYear: "19BBY", EyeColor: "blue", Height: "172"}
	if err := db.Instance.Create(&person).Error; err != nil {
		t.Fatalf("cannot create person %s: %v", name, err)
	}
	return person
}
