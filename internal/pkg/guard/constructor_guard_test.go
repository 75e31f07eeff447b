package guard_test

import (
	"errors"
	"sync"
	"testing"

	"bakery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuardUsageExample(t *testing.T) {
	errProductNotConstructed := errors.New("Product must be created via NewProduct")

	type Product struct {
		name  string
		guard guard.ConstructorGuard
	}

	newProduct := func(name string) Product {
		return Product{name: name, guard: guard.NewConstructorGuard()}
	}

	validate := func(p Product) error {
		return p.guard.Validate(errProductNotConstructed)
	}

	t.Run("constructed_product_is_valid", func(t *testing.T) {
		p := newProduct("marraqueta")
		require.NoError(t, validate(p))
		assert.Equal(t, "marraqueta", p.name)
	})

	t.Run("literal_product_is_invalid", func(t *testing.T) {
		p := Product{name: "hallulla"}
		require.ErrorIs(t, validate(p), errProductNotConstructed)
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("concurrent test")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, g.Validate(validationError))
			}
		}()
	}
	wg.Wait()
}
