package db

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Each club gets one seeded admin account: a student-role user whose
// managed_club grants them event-posting rights for that club.
var clubAdmins = []struct {
	Email string
	Name  string
	Club  string
}{
	{"geek@rjit.com", "RJIT GEEKS Admin", "RJIT GEEKS"},
	{"innovator@rjit.com", "INNOvators Admin", "INNOvators"},
	{"manthan@rjit.com", "MANTHAN Admin", "MANTHAN"},
}

const defaultAdminPassword = "admin123"

// SeedClubAdmins creates the fixed club admin accounts if they don't exist
// yet. A concurrent seeder losing the insert race surfaces as a duplicate
// email, which just means the account is already there.
func (s *Store) SeedClubAdmins(ctx context.Context) error {
	for _, admin := range clubAdmins {
		existing, err := s.GetUserByEmail(ctx, admin.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		club := admin.Club
		studentId := "ADMIN"
		branch := "CSE"
		year := "4"
		semester := "8"

		user := &User{
			Email:        admin.Email,
			Name:         admin.Name,
			PasswordHash: string(hash),
			Role:         "student",
			ManagedClub:  &club,
			StudentId:    &studentId,
			Branch:       &branch,
			Year:         &year,
			Semester:     &semester,
		}

		if err := s.CreateUser(ctx, user); err != nil {
			if err == ErrDuplicateEmail {
				continue
			}
			return err
		}

		log.Printf("Seeded club admin: %s", admin.Email)
	}

	return nil
}
