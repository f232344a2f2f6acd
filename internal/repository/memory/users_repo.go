// Package memory holds an in-memory Users repository mirroring the Mongo
// implementation's error taxonomy. It backs the service and handler tests;
// nothing here talks to a real database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jey-uki/users-api/internal/models"
	"github.com/jey-uki/users-api/internal/repository"
	"github.com/jey-uki/users-api/internal/storage"
)

type usersRepo struct {
	mu      sync.Mutex
	byID    map[primitive.ObjectID]models.User
	failing bool
}

func NewUsers() repository.Users {
	return &usersRepo{byID: make(map[primitive.ObjectID]models.User)}
}

// NewFailingUsers returns a repo whose every operation reports a generic
// storage failure, for exercising the 500 path.
func NewFailingUsers() repository.Users {
	return &usersRepo{failing: true}
}

var errStorage = &storageFailure{}

type storageFailure struct{}

func (*storageFailure) Error() string { return "storage unavailable" }

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if r.failing {
		return models.User{}, errStorage
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return models.User{}, storage.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.byID[u.ID] = u
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	if r.failing {
		return models.User{}, errStorage
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, storage.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[oid]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	if r.failing {
		return nil, errStorage
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *usersRepo) Update(ctx context.Context, id string, in models.UpdateUserInput) (models.User, error) {
	if r.failing {
		return models.User{}, errStorage
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, storage.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[oid]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	if in.Email != nil {
		for otherID, other := range r.byID {
			if otherID != oid && other.Email == *in.Email {
				return models.User{}, storage.ErrDuplicateEmail
			}
		}
		u.Email = *in.Email
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Age != nil {
		age := *in.Age
		u.Age = &age
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	u.UpdatedAt = time.Now().UTC()
	r.byID[oid] = u
	return u, nil
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	if r.failing {
		return errStorage
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[oid]; !ok {
		return storage.ErrNotFound
	}
	delete(r.byID, oid)
	return nil
}
