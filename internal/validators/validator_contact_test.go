package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestContactValidator_Fields(t *testing.T) {
	v := NewContactValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		fields  models.ContactFields
		wantErr string
	}{
		{
			name:   "valid",
			fields: models.ContactFields{Name: "Jo", Email: "jo@x.com", Phone: "123"},
		},
		{
			name:   "valid with favorite",
			fields: models.ContactFields{Name: "Jo", Email: "jo@x.com", Phone: "123", Favorite: boolPtr(true)},
		},
		{
			name:    "missing name",
			fields:  models.ContactFields{Email: "jo@x.com", Phone: "123"},
			wantErr: "name",
		},
		{
			name:    "missing phone",
			fields:  models.ContactFields{Name: "Jo", Email: "jo@x.com"},
			wantErr: "phone",
		},
		{
			name:    "bad email",
			fields:  models.ContactFields{Name: "Jo", Email: "jo", Phone: "123"},
			wantErr: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.fields)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestContactValidator_Update(t *testing.T) {
	v := NewContactValidator()
	ctx := context.Background()

	t.Run("empty update", func(t *testing.T) {
		err := v.Validate(ctx, models.ContactUpdate{})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("single field", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, &models.ContactUpdate{Phone: strPtr("555")}))
	})

	t.Run("favorite only", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.ContactUpdate{Favorite: boolPtr(false)}))
	})

	t.Run("blank name", func(t *testing.T) {
		err := v.Validate(ctx, models.ContactUpdate{Name: strPtr("")})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.NotErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("bad email", func(t *testing.T) {
		err := v.Validate(ctx, models.ContactUpdate{Email: strPtr("nope")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestContactValidator_Favorite(t *testing.T) {
	v := NewContactValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.FavoriteRequest{}), ErrInvalidInput)
	assert.NoError(t, v.Validate(ctx, models.FavoriteRequest{Favorite: boolPtr(false)}))
}

func TestContactValidator_ListQuery(t *testing.T) {
	v := NewContactValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ContactListQuery{OwnerID: "u1", Page: 1, Limit: 20}))
	assert.ErrorIs(t, v.Validate(ctx, models.ContactListQuery{OwnerID: "u1", Page: 0, Limit: 20}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(ctx, models.ContactListQuery{OwnerID: "u1", Page: -2, Limit: 20}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(ctx, models.ContactListQuery{OwnerID: "u1", Page: 1}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(ctx, models.ContactListQuery{Page: 1, Limit: 1}), ErrInvalidInput)

	assert.NoError(t, v.Validate(ctx, models.ContactListQuery{OwnerID: "u1", Page: MaxListPage, Limit: MaxListLimit}))
	assert.ErrorIs(t, v.Validate(ctx, models.ContactListQuery{OwnerID: "u1", Page: 1, Limit: MaxListLimit + 1}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(ctx, models.ContactListQuery{OwnerID: "u1", Page: 1, Limit: 1 << 34}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(ctx, models.ContactListQuery{OwnerID: "u1", Page: 1 << 62, Limit: 4}), ErrInvalidInput)
}

func TestContactValidator_UnsupportedType(t *testing.T) {
	v := NewContactValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.SignupRequest{}), ErrUnsupportedType)
}
