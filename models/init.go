package models

import (
	"log"

	"swapi/config"
	"swapi/db"
)

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Person{})
	db.Instance.AutoMigrate(&Planet{})
	db.Instance.AutoMigrate(&FavouritePlanet{})
	db.Instance.AutoMigrate(&FavouritePerson{})

	bootstrapInitialUser()
	if config.SEED_DEMO_DATA {
		seedDemoData()
	}
}

// bootstrapInitialUser creates the configured account on a fresh database so
// the server is usable without external admin tooling.
func bootstrapInitialUser() {
	if config.INITIAL_USER_EMAIL == "" || config.INITIAL_USER_PASSWORD == "" {
		return
	}
	count := int64(0)
	if err := db.Instance.Model(&User{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	if _, err := UserCreate(config.INITIAL_USER_EMAIL, config.INITIAL_USER_PASSWORD); err != nil {
		log.Printf("Cannot create initial user: %v", err)
		return
	}
	log.Printf("Created initial user %s", config.INITIAL_USER_EMAIL)
}
