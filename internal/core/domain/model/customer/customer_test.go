package customer_test

import (
	"testing"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create a location bound to its company", func(t *testing.T) {
		loc, err := customer.NewLocation(3, 1, "  Casino Planta Norte ", "Av. Matta 123")
		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.Equal(t, int64(3), loc.ID())
		assert.Equal(t, int64(1), loc.CompanyID())
		assert.Equal(t, "Casino Planta Norte", loc.Name())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		loc, err := customer.NewLocation(0, -1, " ", "")
		require.Error(t, err)
		assert.Nil(t, loc)
		assert.Contains(t, err.Error(), "customer location id")
		assert.Contains(t, err.Error(), "company id")
		assert.Contains(t, err.Error(), "customer location name")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var loc customer.Location
		assert.Equal(t, customer.ErrLocationIsNotConstructed, loc.Validate())
		var nilLoc *customer.Location
		assert.Equal(t, customer.ErrLocationIsNotConstructed, nilLoc.Validate())
	})
}

func TestNewCompany(t *testing.T) {
	c, err := customer.NewCompany(1, "Minera Los Andes")
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "Minera Los Andes", c.Name())

	_, err = customer.NewCompany(1, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
