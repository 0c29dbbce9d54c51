// Seeds the database with an admin account and a few sample employees.
// Existing emails are skipped, so the command is safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/amit-109/AttendanceApp-backend/internal/config"
	"github.com/amit-109/AttendanceApp-backend/internal/domain/employee"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/database"
	"github.com/amit-109/AttendanceApp-backend/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	name     string
	email    string
	password string
	role     employee.Role
}

var seedUsers = []seedUser{
	{"Admin", "admin@example.com", "admin123", employee.RoleAdmin},
	{"John Doe", "john@example.com", "password123", employee.RoleEmployee},
	{"Jane Smith", "jane@example.com", "password123", employee.RoleEmployee},
	{"Bob Wilson", "bob@example.com", "password123", employee.RoleEmployee},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Error hashing password: ", err)
		}

		_, err = repo.Create(ctx, employee.Employee{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			IsActive:     true,
		})
		if err != nil {
			if errors.Is(err, employee.ErrEmailExists) {
				log.Printf("skipping %s: already exists", u.email)
				continue
			}
			log.Fatal("Error seeding employee: ", err)
		}
		log.Printf("created %s (%s)", u.email, u.role)
	}
}
