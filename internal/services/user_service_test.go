package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jey-uki/users-api/internal/api/validate"
	"github.com/jey-uki/users-api/internal/models"
	"github.com/jey-uki/users-api/internal/repository/memory"
	"github.com/jey-uki/users-api/internal/storage"
)

func newSvc() *UserService { return NewUserService(memory.NewUsers()) }

func TestCreateNormalizesAndDefaults(t *testing.T) {
	svc := newSvc()
	age := 25
	u, err := svc.Create(context.Background(), models.CreateUserInput{
		Name:  "Jane Smith",
		Email: "JANE@Example.com",
		Age:   &age,
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.True(t, u.IsActive, "isActive defaults to true when omitted")
	assert.False(t, u.ID.IsZero())
	assert.False(t, u.CreatedAt.IsZero())
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestCreateKeepsExplicitInactive(t *testing.T) {
	svc := newSvc()
	inactive := false
	u, err := svc.Create(context.Background(), models.CreateUserInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, u.IsActive)
}

func TestCreateValidationFailureIsNotPersisted(t *testing.T) {
	svc := newSvc()
	_, err := svc.Create(context.Background(), models.CreateUserInput{Name: "X", Email: "not-an-email"})
	var errs validate.Errs
	require.ErrorAs(t, err, &errs)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestCreateDuplicateEmailAfterNormalization(t *testing.T) {
	svc := newSvc()
	_, err := svc.Create(context.Background(), models.CreateUserInput{Name: "A", Email: "jane@example.com"})
	require.NoError(t, err)

	// differs only by case and surrounding whitespace
	_, err = svc.Create(context.Background(), models.CreateUserInput{Name: "B", Email: "  Jane@EXAMPLE.com "})
	require.ErrorIs(t, err, storage.ErrDuplicateEmail)
}

func TestUpdatePartialPayload(t *testing.T) {
	svc := newSvc()
	age := 30
	created, err := svc.Create(context.Background(), models.CreateUserInput{
		Name:  "Jane",
		Email: "jane@example.com",
		Age:   &age,
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	name := "Janet"
	updated, err := svc.Update(context.Background(), created.ID.Hex(), models.UpdateUserInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Janet", updated.Name)
	assert.Equal(t, "jane@example.com", updated.Email, "email untouched")
	require.NotNil(t, updated.Age)
	assert.Equal(t, 30, *updated.Age, "age untouched")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updatedAt refreshed")
}

func TestUpdateValidatesOnlyPresentFields(t *testing.T) {
	svc := newSvc()
	created, err := svc.Create(context.Background(), models.CreateUserInput{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	bad := 200
	_, err = svc.Update(context.Background(), created.ID.Hex(), models.UpdateUserInput{Age: &bad})
	var errs validate.Errs
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "age", errs[0].Field)
}

func TestUpdateMissingAndMalformedIDs(t *testing.T) {
	svc := newSvc()
	name := "Y"
	_, err := svc.Update(context.Background(), "64b0c2f4a9d1e8f3b2a1c0d9", models.UpdateUserInput{Name: &name})
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = svc.Update(context.Background(), "nope", models.UpdateUserInput{Name: &name})
	require.ErrorIs(t, err, storage.ErrInvalidID)
}

func TestDeleteThenGetAndRepeatDelete(t *testing.T) {
	svc := newSvc()
	created, err := svc.Create(context.Background(), models.CreateUserInput{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)
	id := created.ID.Hex()

	require.NoError(t, svc.Delete(context.Background(), id))

	_, err = svc.Get(context.Background(), id)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// second delete is not a silent success
	require.ErrorIs(t, svc.Delete(context.Background(), id), storage.ErrNotFound)
}

func TestGetMalformedID(t *testing.T) {
	svc := newSvc()
	_, err := svc.Get(context.Background(), "not-a-hex-id")
	require.ErrorIs(t, err, storage.ErrInvalidID)
}
