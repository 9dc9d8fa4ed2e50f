package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"swapi/auth"
	"swapi/db"
	"swapi/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter spins up a throwaway DB and a router with the same routes as
// the server binary.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("cannot open test DB: %v", err)
	}
	db.Instance = gdb
	models.Init()

	router := gin.New()
	router.GET("/", Sitemap(router))
	router.GET("/people", PeopleList)
	router.GET("/people/:people_id", PersonGet)
	router.GET("/planets", PlanetList)
	router.GET("/planets/:planet_id", PlanetGet)
	router.GET("/users", UserList)
	router.GET("/users/favorites", UserList)
	router.POST("/login", UserLogin)

	authRouter := &auth.Router{Base: router}
	authRouter.GET("/current-user", UserCurrent)
	authRouter.POST("/favorite/planet/:planet_id", FavouritePlanetAdd)
	authRouter.DELETE("/favorite/planet/:planet_id", FavouritePlanetRemove)
	authRouter.POST("/favorite/people/:people_id", FavouritePersonAdd)
	authRouter.DELETE("/favorite/people/:people_id", FavouritePersonRemove)
	return router
}

func createUser(t *testing.T, email, password string) models.User {
	t.Helper()
	user, err := models.UserCreate(email, password)
	if err != nil {
		t.Fatalf("cannot create user: %v", err)
	}
	return user
}

func createPlanet(t *testing.T, name string) models.Planet {
	t.Helper()
	planet := models.Planet{Name: name, Diameter: "10465", Climate: "arid", Population: "200000"}
	if err := db.Instance.Create(&planet).Error; err != nil {
		t.Fatalf("cannot create planet: %v", err)
	}
	return planet
}

func createPerson(t *testing.T, name string) models.Person {
	t.Helper()
	person := models.Person{Name: name, BirthYear: "19BBY", EyeColor: "blue", Height: "172"}
	if err := db.Instance.Create(&person).Error; err != nil {
		t.Fatalf("cannot create person: %v", err)
	}
	return person
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("cannot decode body %q: %v", w.Body.String(), err)
	}
}

func loginToken(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := doRequest(router, "POST", "/login", "", gin.H{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	result := struct {
		AccessToken string `json:"access_token"`
	}{}
	decodeBody(t, w, &result)
	if result.AccessToken == "" {
		t.Fatal("login returned an empty token")
	}
	return result.AccessToken
}
