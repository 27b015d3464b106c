package kernel_test

import (
	"testing"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	t.Run("NewLocation creates valid location", func(t *testing.T) {
		loc, err := kernel.NewLocation("dorm-12", "Dormitory 12", 25000)
		require.NoError(t, err)

		assert.Equal(t, "dorm-12", loc.ID())
		assert.Equal(t, "Dormitory 12", loc.Name())
		assert.Equal(t, int64(25000), loc.Fee())
		require.NoError(t, loc.Validate())
	})

	t.Run("requires id and name", func(t *testing.T) {
		_, err := kernel.NewLocation("", "Dormitory 12", 25000)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = kernel.NewLocation("dorm-12", "", 25000)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative fee", func(t *testing.T) {
		_, err := kernel.NewLocation("dorm-12", "Dormitory 12", -1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero fee is allowed for free delivery", func(t *testing.T) {
		_, err := kernel.NewLocation("dorm-12", "Dormitory 12", 0)
		require.NoError(t, err)
	})

	t.Run("IsEqual compares by id", func(t *testing.T) {
		a, _ := kernel.NewLocation("dorm-12", "Dormitory 12", 25000)
		b, _ := kernel.NewLocation("dorm-12", "Dorm Twelve", 30000)
		c, _ := kernel.NewLocation("dorm-13", "Dormitory 13", 25000)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var loc kernel.Location
		assert.Equal(t, kernel.ErrLocationIsNotConstructed, loc.Validate())
	})
}
