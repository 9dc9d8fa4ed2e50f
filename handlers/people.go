package handlers

import (
	"errors"
	"net/http"

	"swapi/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func PeopleList(c *gin.Context) {
	people, err := models.AllPeople()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, people)
}

func PersonGet(c *gin.Context) {
	id, ok := pathID(c, "people_id")
	if !ok {
		return
	}
	person, err := models.PersonByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, Response{models.ErrPersonNotFound.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, person)
}
