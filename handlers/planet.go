package handlers

import (
	"errors"
	"net/http"

	"swapi/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func PlanetList(c *gin.Context) {
	planets, err := models.AllPlanets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, planets)
}

func PlanetGet(c *gin.Context) {
	id, ok := pathID(c, "planet_id")
	if !ok {
		return
	}
	planet, err := models.PlanetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, Response{models.ErrPlanetNotFound.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, planet)
}
