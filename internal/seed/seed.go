// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"

	"nutriplan/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	ShouldClean bool
	// WithProfiles controls how many of the seeded users get a filled-in
	// health profile, as a fraction in [0, 1].
	WithProfiles float64
}

// Run seeds the database with users and health profiles.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 50
	}
	if opts.WithProfiles <= 0 || opts.WithProfiles > 1 {
		opts.WithProfiles = 0.8
	}

	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	f := NewFactory(db)

	withProfile := int(float64(opts.NumUsers) * opts.WithProfiles)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding user %d: %w", i+1, err)
		}
		if i < withProfile {
			if _, err := f.CreateHealthProfile(user); err != nil {
				return fmt.Errorf("seeding profile for user %d: %w", user.ID, err)
			}
		}
	}

	return nil
}

// Clean removes all seeded rows. Profiles go first to respect the
// foreign key on databases without cascading deletes.
func Clean(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.HealthProfile{}).Error; err != nil {
		return fmt.Errorf("cleaning health profiles: %w", err)
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("cleaning users: %w", err)
	}
	return nil
}
