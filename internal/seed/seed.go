package seed

import (
	"fmt"
	"log"

	"quill/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	MaxFollows  int
	MaxDays     int
	SkipBcrypt  bool
	ShouldClean bool
}

// Seed populates the database with test data: users, a spread of posts, and
// a random follow mesh between the users.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway")
		}
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[factory.rand.Intn(len(users))]
		posts = append(posts, factory.BuildPost(author))
	}
	if err := factory.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	maxFollows := opts.MaxFollows
	if maxFollows <= 0 {
		maxFollows = 5
	}
	edges := 0
	for _, user := range users {
		n := factory.rand.Intn(maxFollows + 1)
		for i := 0; i < n; i++ {
			target := users[factory.rand.Intn(len(users))]
			if err := factory.CreateFollow(user.ID, target.ID); err != nil {
				return fmt.Errorf("failed to create follow: %w", err)
			}
			edges++
		}
	}
	log.Printf("created follow mesh (%d attempts)", edges)

	log.Println("database seeding completed")
	return nil
}

// clearData removes seedable rows. Order matters because of foreign keys.
func clearData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Follow{},
		&models.Post{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
