package models

import (
	"swapi/db"
)

type Person struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(250);not null" json:"name"`
	BirthYear string `gorm:"type:varchar(250);not null" json:"birth_year"`
	EyeColor  string `gorm:"type:varchar(250);not null" json:"eye_color"`
	Height    string `gorm:"type:varchar(250);not null" json:"height"`
}

// TableName overrides the table name
func (Person) TableName() string {
	return "people"
}

func PersonByID(id uint64) (p Person, err error) {
	err = db.Instance.First(&p, id).Error
	return
}

func AllPeople() (people []Person, err error) {
	people = []Person{}
	err = db.Instance.Order("id").Find(&people).Error
	return
}
