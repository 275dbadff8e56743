package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/CalvinOheneba/Feeding/app/config"
	"github.com/CalvinOheneba/Feeding/app/database"
	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/CalvinOheneba/Feeding/app/routes/auth"
)

// Seeds the initial admin account, two stations and their teachers.
func main() {
	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	west := &models.Station{Name: "West Gate"}
	if err := database.CreateStation(db, west); err != nil {
		log.Fatal("Error creating station:", err)
	}
	east := &models.Station{Name: "East Gate"}
	if err := database.CreateStation(db, east); err != nil {
		log.Fatal("Error creating station:", err)
	}

	seedUser(db, "Admin User", "admin@school.com", "admin123", models.RoleAdmin, nil)
	seedUser(db, "Teacher Alice", "alice@school.com", "teacher123", models.RoleTeacher, &west.ID)
	seedUser(db, "Teacher Bob", "bob@school.com", "teacher123", models.RoleTeacher, &east.ID)

	fmt.Println("Initial users created successfully!")
}

func seedUser(db *sql.DB, name, email, password string, role models.Role, stationID *string) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("Error hashing password:", err)
	}

	user := &models.User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		Role:      role,
		StationID: stationID,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Error creating user:", err)
	}
	fmt.Printf("User created successfully: %s (%s)\n", user.Name, user.Email)
}
