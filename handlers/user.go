package handlers

import (
	"net/http"

	"swapi/auth"
	"swapi/models"

	"github.com/gin-gonic/gin"
)

type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserInfo struct {
	ID              uint64          `json:"id"`
	Email           string          `json:"email"`
	IsActive        bool            `json:"is_active"`
	FavoritePlanets []models.Planet `json:"favorite_planets"`
	FavoritePeople  []models.Person `json:"favorite_people"`
}

var badCredentialsResponse = Response{"Bad username or password"}

// UserLogin issues a bearer token. Unknown email and wrong password are
// reported identically.
func UserLogin(c *gin.Context) {
	postReq := UserLoginRequest{}
	if err := c.ShouldBindJSON(&postReq); err != nil {
		c.JSON(http.StatusUnauthorized, badCredentialsResponse)
		return
	}
	user, success := models.UserLogin(postReq.Email, postReq.Password)
	if !success {
		c.JSON(http.StatusUnauthorized, badCredentialsResponse)
		return
	}
	token, err := auth.IssueToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func UserCurrent(c *gin.Context, user *models.User) {
	info, err := userInfo(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current_user": info})
}

// UserList returns every user with their favourites expanded.
func UserList(c *gin.Context) {
	users, err := models.AllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []UserInfo{}
	for i := range users {
		info, err := userInfo(&users[i])
		if err != nil {
			c.JSON(http.StatusInternalServerError, DBError2Response)
			return
		}
		result = append(result, info)
	}
	c.JSON(http.StatusOK, result)
}

func userInfo(user *models.User) (UserInfo, error) {
	planets, err := models.FavouritePlanets(user.ID)
	if err != nil {
		return UserInfo{}, err
	}
	people, err := models.FavouritePeople(user.ID)
	if err != nil {
		return UserInfo{}, err
	}
	return UserInfo{
		ID:              user.ID,
		Email:           user.Email,
		IsActive:        user.IsActive,
		FavoritePlanets: planets,
		FavoritePeople:  people,
	}, nil
}
