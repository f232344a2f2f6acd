package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jey-uki/users-api/internal/api/validate"
)

func TestCreateInputNormalize(t *testing.T) {
	in := CreateUserInput{Name: "  Jane Smith  ", Email: " JANE@Example.com "}
	in.Normalize()
	assert.Equal(t, "Jane Smith", in.Name)
	assert.Equal(t, "jane@example.com", in.Email)
}

func TestCreateInputValidate(t *testing.T) {
	age := 25
	bad := -1
	over := 121
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}

	cases := []struct {
		name   string
		in     CreateUserInput
		fields []string // violated fields, empty means valid
	}{
		{"valid", CreateUserInput{Name: "Jane", Email: "jane@example.com", Age: &age}, nil},
		{"valid without age", CreateUserInput{Name: "Jane", Email: "jane@example.com"}, nil},
		{"missing name", CreateUserInput{Email: "jane@example.com"}, []string{"name"}},
		{"missing email", CreateUserInput{Name: "Jane"}, []string{"email"}},
		{"missing both", CreateUserInput{}, []string{"name", "email"}},
		{"name too long", CreateUserInput{Name: string(long), Email: "jane@example.com"}, []string{"name"}},
		{"malformed email", CreateUserInput{Name: "X", Email: "not-an-email"}, []string{"email"}},
		{"age negative", CreateUserInput{Name: "Jane", Email: "jane@example.com", Age: &bad}, []string{"age"}},
		{"age too large", CreateUserInput{Name: "Jane", Email: "jane@example.com", Age: &over}, []string{"age"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			err := tc.in.Validate()
			if len(tc.fields) == 0 {
				require.NoError(t, err)
				return
			}
			var errs validate.Errs
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, len(tc.fields))
			for i, f := range tc.fields {
				assert.Equal(t, f, errs[i].Field)
			}
		})
	}
}

func TestUpdateInputValidatesOnlyPresentFields(t *testing.T) {
	// nothing present, nothing to reject
	empty := UpdateUserInput{}
	empty.Normalize()
	require.NoError(t, empty.Validate())

	name := "Y"
	onlyName := UpdateUserInput{Name: &name}
	onlyName.Normalize()
	require.NoError(t, onlyName.Validate())

	badEmail := "nope"
	in := UpdateUserInput{Name: &name, Email: &badEmail}
	in.Normalize()
	var errs validate.Errs
	require.ErrorAs(t, in.Validate(), &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestUpdateInputNormalize(t *testing.T) {
	email := "  ADMIN@Site.ORG "
	in := UpdateUserInput{Email: &email}
	in.Normalize()
	require.NotNil(t, in.Email)
	assert.Equal(t, "admin@site.org", *in.Email)
}
