package db

import (
	"swapi/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init opens the process-wide DB handle. MySQL is used when MYSQL_DSN is
// configured, otherwise a local SQLite file.
func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else {
		dialector = sqlite.Open(config.SQLITE_FILE)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}

// Close releases the underlying connection pool.
func Close() error {
	if Instance == nil {
		return nil
	}
	sqlDB, err := Instance.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
