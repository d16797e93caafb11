package user

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrUsernameIsRequired is returned when creating a user without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrUserIsNotConstructed is returned when using a zero-value User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is an account of the platform. Only the fields that take part in
// order fulfillment are modelled: the profile that checkout snapshots, the
// open flag of restaurants and the feedback accumulated by shippers.
//
// Business rules:
//   - Username is the identity and never changes
//   - Exactly one role per account
//   - Only restaurants can be opened or closed
//   - Only shippers accumulate shipper ratings; the lists grow without bound and
//     the mean is computed on demand
type User struct {
	username    string
	role        Role
	address     string
	phone       string
	displayName string

	// open is meaningful for restaurants only.
	open bool

	shipperRatings  []int
	shipperComments []string

	guard guard.ConstructorGuard
}

// NewUser creates an account. Restaurants start open.
//
// Example:
//
//	u, err := user.NewUser("pizzahub", user.Restaurant, "1 Main St", "555-0100", "Pizza Hub")
func NewUser(username string, role Role, address, phone, displayName string) (*User, error) {
	u := &User{
		address:     address,
		phone:       phone,
		displayName: displayName,
		open:        true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setUsername(username),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds an account from a persisted snapshot, including the
// shipper feedback lists.
func RestoreUser(
	username string,
	role Role,
	address, phone, displayName string,
	open bool,
	shipperRatings []int,
	shipperComments []string,
) (*User, error) {
	u, err := NewUser(username, role, address, phone, displayName)
	if err != nil {
		return nil, err
	}

	for _, r := range shipperRatings {
		if err = kernel.ValidateRating(r); err != nil {
			return nil, err
		}
	}

	u.open = open
	u.shipperRatings = append([]int(nil), shipperRatings...)
	u.shipperComments = append([]string(nil), shipperComments...)
	return u, nil
}

// Validate ensures the user was created through NewUser or RestoreUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// Username returns the account identity.
func (u *User) Username() string {
	return u.username
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// Actor returns the identity this user acts with.
func (u *User) Actor() Actor {
	return Actor{Username: u.username, Role: u.role}
}

// Address returns the current delivery address.
func (u *User) Address() string {
	return u.address
}

// Phone returns the current contact phone.
func (u *User) Phone() string {
	return u.phone
}

// DisplayName returns the restaurant or shipper name, falling back to the username.
func (u *User) DisplayName() string {
	if u.displayName == "" {
		return u.username
	}
	return u.displayName
}

// IsOpen reports whether a restaurant accepts new cart additions.
// Non-restaurant accounts always report true.
func (u *User) IsOpen() bool {
	if u.role != Restaurant {
		return true
	}
	return u.open
}

// SetOpen opens or closes a restaurant.
func (u *User) SetOpen(open bool) error {
	if u.role != Restaurant {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot be opened or closed", u.role))
	}
	u.open = open
	return nil
}

// UpdateProfile replaces the contact details. Orders placed earlier keep
// the values captured at their checkout.
func (u *User) UpdateProfile(address, phone string) {
	u.address = address
	u.phone = phone
}

// Edit replaces the role and profile of an account. Shipper feedback is kept
// whatever the new role. An account that becomes a restaurant starts open.
func (u *User) Edit(role Role, address, phone, displayName string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == Restaurant && u.role != Restaurant {
		u.open = true
	}
	u.role = role
	u.address = address
	u.phone = phone
	u.displayName = displayName
	return nil
}

// AddShipperRating appends a rating (and a non-empty comment) to a shipper account.
func (u *User) AddShipperRating(rating int, comment string) error {
	if u.role != Shipper {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot receive shipper ratings", u.role))
	}
	if err := kernel.ValidateRating(rating); err != nil {
		return err
	}

	u.shipperRatings = append(u.shipperRatings, rating)
	if comment != "" {
		u.shipperComments = append(u.shipperComments, comment)
	}
	return nil
}

// ShipperRatings returns a copy of every rating the shipper received.
func (u *User) ShipperRatings() []int {
	return append([]int(nil), u.shipperRatings...)
}

// ShipperComments returns a copy of every comment the shipper received.
func (u *User) ShipperComments() []string {
	return append([]string(nil), u.shipperComments...)
}

// ShipperAverage returns the mean shipper rating, 0 when unrated.
func (u *User) ShipperAverage() float64 {
	return kernel.Mean(u.shipperRatings)
}

// Clone returns a deep copy safe to hand to concurrent readers.
func (u *User) Clone() *User {
	c := *u
	c.shipperRatings = u.ShipperRatings()
	c.shipperComments = u.ShipperComments()
	return &c
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
