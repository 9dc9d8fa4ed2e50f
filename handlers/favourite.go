package handlers

import (
	"errors"
	"net/http"

	"swapi/models"

	"github.com/gin-gonic/gin"
)

func FavouritePlanetAdd(c *gin.Context, user *models.User) {
	id, ok := pathID(c, "planet_id")
	if !ok {
		return
	}
	planet, err := models.AddFavouritePlanet(user.ID, id)
	if err != nil {
		favouriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, planet)
}

func FavouritePlanetRemove(c *gin.Context, user *models.User) {
	id, ok := pathID(c, "planet_id")
	if !ok {
		return
	}
	planet, err := models.RemoveFavouritePlanet(user.ID, id)
	if err != nil {
		favouriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, planet)
}

func FavouritePersonAdd(c *gin.Context, user *models.User) {
	id, ok := pathID(c, "people_id")
	if !ok {
		return
	}
	person, err := models.AddFavouritePerson(user.ID, id)
	if err != nil {
		favouriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func FavouritePersonRemove(c *gin.Context, user *models.User) {
	id, ok := pathID(c, "people_id")
	if !ok {
		return
	}
	person, err := models.RemoveFavouritePerson(user.ID, id)
	if err != nil {
		favouriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func favouriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrPlanetNotFound),
		errors.Is(err, models.ErrPersonNotFound),
		errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, Response{err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, DBError1Response)
	}
}
