package user

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role is the single role a user account holds.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	Customer
	Shipper
	Restaurant
	Admin
	Owner
	Administrator
	CustomerService
)

var roleNames = map[Role]string{
	Customer:        "CUSTOMER",
	Shipper:         "SHIPPER",
	Restaurant:      "RESTAURANT",
	Admin:           "ADMIN",
	Owner:           "OWNER",
	Administrator:   "ADMINISTRATOR",
	CustomerService: "CUSTOMER_SERVICE",
}

// String returns the upper-case role name, or "UNKNOWN".
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole maps a role name back to its Role.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// IsStaff reports whether the role belongs to platform staff (may see every order).
func (r Role) IsStaff() bool {
	switch r {
	case Admin, Owner, Administrator, CustomerService:
		return true
	default:
		return false
	}
}

// CanManageCatalog reports whether the role may edit any restaurant's foods.
func (r Role) CanManageCatalog() bool {
	return r == Admin || r == Owner
}

// CanManageUsers reports whether the role may edit other accounts.
func (r Role) CanManageUsers() bool {
	return r == Administrator || r == Admin || r == Owner
}

// CanGrant reports whether the role may hand out target. Only Admin and Owner
// create further Admin or Owner accounts.
func (r Role) CanGrant(target Role) bool {
	if !r.CanManageUsers() {
		return false
	}
	if target == Admin || target == Owner {
		return r == Admin || r == Owner
	}
	return true
}

// CanResolveComplaints reports whether the role handles support tickets.
func (r Role) CanResolveComplaints() bool {
	return r == CustomerService || r == Admin || r == Owner
}

// Actor identifies who performs an operation. The username is the identity,
// the role is the one verified by the credential collaborator.
type Actor struct {
	Username string
	Role     Role
}

// NewActor builds an Actor, rejecting empty identities and invalid roles.
func NewActor(username string, role Role) (Actor, error) {
	if username == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{Username: username, Role: role}, nil
}

// Validate applies the NewActor rules to an Actor built as a literal.
func (a Actor) Validate() error {
	_, err := NewActor(a.Username, a.Role)
	return err
}

func (a Actor) String() string {
	return fmt.Sprintf("%s (%s)", a.Username, a.Role)
}
