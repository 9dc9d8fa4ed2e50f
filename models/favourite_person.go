package models

import (
	"errors"

	"swapi/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavouritePerson struct {
	UserID   uint64 `gorm:"primaryKey"`
	User     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PersonID uint64 `gorm:"primaryKey"`
	Person   Person `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// AddFavouritePerson is the Person counterpart of AddFavouritePlanet.
func AddFavouritePerson(userID, personID uint64) (Person, error) {
	person, err := PersonByID(personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Person{}, ErrPersonNotFound
		}
		return Person{}, err
	}
	if err := userExists(userID); err != nil {
		return Person{}, err
	}
	fav := FavouritePerson{UserID: userID, PersonID: personID}
	if err := db.Instance.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
		return Person{}, err
	}
	return person, nil
}

// RemoveFavouritePerson removes the pair if present, succeeding either way.
func RemoveFavouritePerson(userID, personID uint64) (Person, error) {
	person, err := PersonByID(personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Person{}, ErrPersonNotFound
		}
		return Person{}, err
	}
	if err := userExists(userID); err != nil {
		return Person{}, err
	}
	err = db.Instance.Where("user_id = ? AND person_id = ?", userID, personID).
		Delete(&FavouritePerson{}).Error
	return person, err
}

// FavouritePeople returns the people the user has marked as favourite.
func FavouritePeople(userID uint64) (people []Person, err error) {
	people = []Person{}
	err = db.Instance.
		Joins("inner join favourite_people on favourite_people.person_id = people.id").
		Where("favourite_people.user_id = ?", userID).
		Order("people.id").
		Find(&people).Error
	return
}
