package user_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create valid user", func(t *testing.T) {
		u, err := user.NewUser("customer1", user.Customer, "12 Elm St", "555-0101", "")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "customer1", u.Username())
		assert.Equal(t, user.Customer, u.Role())
		assert.Equal(t, "12 Elm St", u.Address())
		assert.Equal(t, "555-0101", u.Phone())
		assert.Equal(t, "customer1", u.DisplayName())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		u, err := user.NewUser("", user.UnknownRole, "", "", "")

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "value is required: username")
		assert.Contains(t, err.Error(), "role is invalid")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var u user.User
		var nilUser *user.User

		assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
		assert.Equal(t, user.ErrUserIsNotConstructed, nilUser.Validate())
	})
}

func TestUser_SetOpen(t *testing.T) {
	t.Run("should toggle restaurant", func(t *testing.T) {
		r, _ := user.NewUser("pizzahub", user.Restaurant, "", "", "Pizza Hub")
		require.True(t, r.IsOpen())

		require.NoError(t, r.SetOpen(false))

		assert.False(t, r.IsOpen())
		assert.Equal(t, "Pizza Hub", r.DisplayName())
	})

	t.Run("should reject non restaurant", func(t *testing.T) {
		c, _ := user.NewUser("customer1", user.Customer, "", "", "")

		err := c.SetOpen(false)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, c.IsOpen())
	})
}

func TestUser_Edit(t *testing.T) {
	t.Run("should replace role and profile but keep feedback", func(t *testing.T) {
		u, _ := user.NewUser("rider", user.Shipper, "", "555-0100", "")
		require.NoError(t, u.AddShipperRating(4, "quick"))

		require.NoError(t, u.Edit(user.Restaurant, "9 Dock Rd", "555-0199", "Rider Noodles"))

		assert.Equal(t, user.Restaurant, u.Role())
		assert.Equal(t, "9 Dock Rd", u.Address())
		assert.Equal(t, "555-0199", u.Phone())
		assert.Equal(t, "Rider Noodles", u.DisplayName())
		assert.True(t, u.IsOpen())
		assert.Equal(t, []int{4}, u.ShipperRatings())
	})

	t.Run("should keep a closed restaurant closed", func(t *testing.T) {
		r, _ := user.NewUser("pizzahub", user.Restaurant, "", "", "Pizza Hub")
		require.NoError(t, r.SetOpen(false))

		require.NoError(t, r.Edit(user.Restaurant, "", "", "Pizza Hub Express"))

		assert.False(t, r.IsOpen())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		u, _ := user.NewUser("customer1", user.Customer, "12 Elm St", "", "")

		require.ErrorIs(t, u.Edit(user.UnknownRole, "", "", ""), errs.ErrValueIsInvalid)
		assert.Equal(t, "12 Elm St", u.Address())
	})
}

func TestUser_AddShipperRating(t *testing.T) {
	t.Run("should append rating and non empty comment", func(t *testing.T) {
		s, _ := user.NewUser("shipper1", user.Shipper, "", "", "")

		require.NoError(t, s.AddShipperRating(5, "fast"))
		require.NoError(t, s.AddShipperRating(2, ""))

		assert.Equal(t, []int{5, 2}, s.ShipperRatings())
		assert.Equal(t, []string{"fast"}, s.ShipperComments())
		assert.InDelta(t, 3.5, s.ShipperAverage(), 1e-9)
	})

	t.Run("should reject out of range", func(t *testing.T) {
		s, _ := user.NewUser("shipper1", user.Shipper, "", "", "")

		require.ErrorIs(t, s.AddShipperRating(9, ""), errs.ErrInvalidRating)
		assert.Empty(t, s.ShipperRatings())
	})

	t.Run("should reject non shipper", func(t *testing.T) {
		c, _ := user.NewUser("customer1", user.Customer, "", "", "")

		require.ErrorIs(t, c.AddShipperRating(4, ""), errs.ErrValueIsInvalid)
	})
}

func TestUser_Clone(t *testing.T) {
	s, _ := user.NewUser("shipper1", user.Shipper, "", "", "")
	_ = s.AddShipperRating(4, "ok")

	c := s.Clone()
	_ = s.AddShipperRating(1, "late")

	assert.Equal(t, []int{4}, c.ShipperRatings())
	assert.Equal(t, []int{4, 1}, s.ShipperRatings())
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore feedback and open flag", func(t *testing.T) {
		u, err := user.RestoreUser("pizzahub", user.Restaurant, "a", "p", "Pizza Hub", false, nil, nil)

		require.NoError(t, err)
		assert.False(t, u.IsOpen())
	})

	t.Run("should reject corrupted ratings", func(t *testing.T) {
		_, err := user.RestoreUser("shipper1", user.Shipper, "", "", "", true, []int{7}, nil)

		require.ErrorIs(t, err, errs.ErrInvalidRating)
	})
}

func TestRole(t *testing.T) {
	t.Run("should round trip names", func(t *testing.T) {
		for _, r := range []user.Role{
			user.Customer, user.Shipper, user.Restaurant, user.Admin,
			user.Owner, user.Administrator, user.CustomerService,
		} {
			parsed, err := user.ParseRole(r.String())

			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("should reject unknown", func(t *testing.T) {
		_, err := user.ParseRole("CHEF")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "UNKNOWN", user.Role(42).String())
		require.Error(t, user.UnknownRole.Validate())
	})
}

func TestRole_CanGrant(t *testing.T) {
	assert.True(t, user.Administrator.CanGrant(user.Shipper))
	assert.True(t, user.Administrator.CanGrant(user.CustomerService))
	assert.False(t, user.Administrator.CanGrant(user.Admin))
	assert.True(t, user.Owner.CanGrant(user.Admin))
	assert.False(t, user.CustomerService.CanGrant(user.Customer))
	assert.False(t, user.Restaurant.CanManageUsers())
}

func TestNewActor(t *testing.T) {
	a, err := user.NewActor("shipper1", user.Shipper)
	require.NoError(t, err)
	assert.Equal(t, "shipper1 (SHIPPER)", a.String())

	_, err = user.NewActor("", user.Shipper)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.Error(t, user.Actor{Username: "x"}.Validate())
}
