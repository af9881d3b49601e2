// Package gorm provides a GORM-based token store for the Commentum client.
// It works with any database GORM supports and suits apps that already
// carry a relational database for their own data.
//
// # Usage
//
//	db, _ := gorm.Open(sqlite.Open("app.db"), &gorm.Config{})
//	if err := gormstore.AutoMigrate(db); err != nil {
//	    log.Fatal(err)
//	}
//	store := gormstore.NewStore(db)
//	client := commentum.New(baseURL, store)
package gorm
