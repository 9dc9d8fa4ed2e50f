package models

import (
	"swapi/db"
)

type Planet struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(250);not null" json:"name"`
	Diameter   string `gorm:"type:varchar(250);not null" json:"diameter"`
	Climate    string `gorm:"type:varchar(250);not null" json:"climate"`
	Population string `gorm:"type:varchar(250);not null" json:"population"`
}

func PlanetByID(id uint64) (p Planet, err error) {
	err = db.Instance.First(&p, id).Error
	return
}

func AllPlanets() (planets []Planet, err error) {
	planets = []Planet{}
	err = db.Instance.Order("id").Find(&planets).Error
	return
}
