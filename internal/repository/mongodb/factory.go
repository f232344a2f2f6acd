package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	repo "github.com/jey-uki/users-api/internal/repository"
)

type Repositories struct {
	Users repo.Users
}

func NewRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users: NewUsers(db),
	}
}
