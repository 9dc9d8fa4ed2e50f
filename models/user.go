package models

import (
	"swapi/db"
	"swapi/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Email     string `gorm:"type:varchar(250);index:uniq_email,unique;not null"`
	Password  string `gorm:"type:varchar(128);not null"`
	PassSalt  string `gorm:"type:varchar(200);not null"`
	IsActive  bool   `gorm:"not null;default:true"`
}

const saltSize = 60

func UserCreate(email, plainTextPassword string) (u User, err error) {
	u.Email = email
	u.IsActive = true
	u.SetPassword(plainTextPassword)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

// UserLogin verifies the given credentials. A missing account and a wrong
// password are indistinguishable to the caller.
func UserLogin(email, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "email = ?", email)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.First(&u, id).Error
	return
}

func AllUsers() (users []User, err error) {
	users = []User{}
	err = db.Instance.Order("id").Find(&users).Error
	return
}
