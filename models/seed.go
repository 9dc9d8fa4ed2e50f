package models

import (
	"log"

	"swapi/db"
)

// seedDemoData inserts a small catalogue into an empty database.
func seedDemoData() {
	count := int64(0)
	if err := db.Instance.Model(&Person{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	people := []Person{
		{Name: "Luke Skywalker", BirthYear: "19BBY", EyeColor: "blue", Height: "172"},
		{Name: "Leia Organa", BirthYear: "19BBY", EyeColor: "brown", Height: "150"},
		{Name: "Darth Vader", BirthYear: "41.9BBY", EyeColor: "yellow", Height: "202"},
		{Name: "Obi-Wan Kenobi", BirthYear: "57BBY", EyeColor: "blue-gray", Height: "182"},
	}
	planets := []Planet{
		{Name: "Tatooine", Diameter: "10465", Climate: "arid", Population: "200000"},
		{Name: "Alderaan", Diameter: "12500", Climate: "temperate", Population: "2000000000"},
		{Name: "Hoth", Diameter: "7200", Climate: "frozen", Population: "unknown"},
		{Name: "Dagobah", Diameter: "8900", Climate: "murky", Population: "unknown"},
	}
	if err := db.Instance.Create(&people).Error; err != nil {
		log.Printf("Cannot seed people: %v", err)
	}
	if err := db.Instance.Create(&planets).Error; err != nil {
		log.Printf("Cannot seed planets: %v", err)
	}
	log.Printf("Seeded %d people and %d planets", len(people), len(planets))
}
