package models

import (
	"errors"

	"swapi/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavouritePlanet struct {
	UserID   uint64 `gorm:"primaryKey"`
	User     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PlanetID uint64 `gorm:"primaryKey"`
	Planet   Planet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// AddFavouritePlanet marks the planet as a favourite of the user. Adding a
// planet that is already a favourite is a no-op success: the composite key
// absorbs duplicate inserts, racing or repeated.
func AddFavouritePlanet(userID, planetID uint64) (Planet, error) {
	planet, err := PlanetByID(planetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Planet{}, ErrPlanetNotFound
		}
		return Planet{}, err
	}
	if err := userExists(userID); err != nil {
		return Planet{}, err
	}
	fav := FavouritePlanet{UserID: userID, PlanetID: planetID}
	if err := db.Instance.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
		return Planet{}, err
	}
	return planet, nil
}

// RemoveFavouritePlanet removes the pair if present. Removing a planet that
// was never favourited still succeeds (the delete affects zero rows).
func RemoveFavouritePlanet(userID, planetID uint64) (Planet, error) {
	planet, err := PlanetByID(planetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Planet{}, ErrPlanetNotFound
		}
		return Planet{}, err
	}
	if err := userExists(userID); err != nil {
		return Planet{}, err
	}
	err = db.Instance.Where("user_id = ? AND planet_id = ?", userID, planetID).
		Delete(&FavouritePlanet{}).Error
	return planet, err
}

// FavouritePlanets returns the planets the user has marked as favourite.
func FavouritePlanets(userID uint64) (planets []Planet, err error) {
	planets = []Planet{}
	err = db.Instance.
		Joins("inner join favourite_planets on favourite_planets.planet_id = planets.id").
		Where("favourite_planets.user_id = ?", userID).
		Order("planets.id").
		Find(&planets).Error
	return
}

func userExists(userID uint64) error {
	count := int64(0)
	if err := db.Instance.Model(&User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}
