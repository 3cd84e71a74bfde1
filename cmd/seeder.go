package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample employees for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"attendance", "tasks", "leaves", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		employees := []struct {
			FirstName string
			LastName  string
			Email     string
			Position  string
		}{
			{"Asha", "Verma", "asha@example.com", "HR Manager"},
			{"Rahul", "Nair", "rahul@example.com", "Software Engineer"},
			{"Meera", "Iyer", "meera@example.com", "Designer"},
		}

		for _, e := range employees {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", e.Email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", e.Email)
				continue
			}

			now := time.Now()
			if err := db.Exec(
				`INSERT INTO users (id, first_name, last_name, email, password_hash, position, avatar, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, '', ?, ?)`,
				uuid.NewString(), e.FirstName, e.LastName, e.Email, string(hash), e.Position, now, now,
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", e.Email, err)
			}
			fmt.Println("Seeded user:", e.Email)
		}
	},
}
