package complaint

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAuthorIsRequired  = errs.NewValueIsRequiredError("author")
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
	// ErrComplaintIsNotConstructed is returned when using a zero-value Complaint.
	ErrComplaintIsNotConstructed = errors.New("Complaint must be created via NewComplaint constructor")
)

// Status of a free-standing complaint.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Resolved
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Resolved:
		return "RESOLVED"
	default:
		return "UNKNOWN"
	}
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case "PENDING":
		return Pending, nil
	case "RESOLVED":
		return Resolved, nil
	default:
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("complaint status", fmt.Errorf("%q is not a valid status", s))
	}
}

// Complaint is a support ticket filed by any user, independent of orders.
type Complaint struct {
	id        kernel.UUID
	author    string
	role      user.Role
	message   string
	createdAt time.Time
	status    Status

	guard guard.ConstructorGuard
}

// NewComplaint files a Pending complaint.
func NewComplaint(id kernel.UUID, author string, role user.Role, message string, createdAt time.Time) (*Complaint, error) {
	c := &Complaint{
		id:        id,
		author:    author,
		role:      role,
		message:   message,
		createdAt: createdAt,
		status:    Pending,
		guard:     guard.NewConstructorGuard(),
	}

	var errList []error
	errList = append(errList, id.Validate(), role.Validate())
	if author == "" {
		errList = append(errList, ErrAuthorIsRequired)
	}
	if message == "" {
		errList = append(errList, ErrMessageIsRequired)
	}
	if createdAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("created at"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreComplaint rebuilds a complaint from persistence.
func RestoreComplaint(
	id kernel.UUID,
	author string,
	role user.Role,
	message string,
	createdAt time.Time,
	status Status,
) (*Complaint, error) {
	c, err := NewComplaint(id, author, role, message, createdAt)
	if err != nil {
		return nil, err
	}
	if status != Pending && status != Resolved {
		return nil, errs.NewValueIsInvalidErrorWithCause("complaint status", fmt.Errorf("%d is not a valid status", status))
	}
	c.status = status
	return c, nil
}

func (c *Complaint) Validate() error {
	if c == nil {
		return ErrComplaintIsNotConstructed
	}
	return c.guard.Validate(ErrComplaintIsNotConstructed)
}

func (c *Complaint) ID() kernel.UUID { return c.id }
func (c *Complaint) Author() string { return c.author }
func (c *Complaint) Role() user.Role { return c.role }
func (c *Complaint) Message() string { return c.message }
func (c *Complaint) CreatedAt() time.Time { return c.createdAt }
func (c *Complaint) Status() Status { return c.status }

func (c *Complaint) IsPending() bool {
	return c.status == Pending
}

// Resolve flips the complaint to Resolved. Resolving twice is rejected so the
// caller learns it acted on a stale view.
func (c *Complaint) Resolve() error {
	if c.status == Resolved {
		return errs.NewValueIsInvalidErrorWithCause("complaint", errors.New("complaint already resolved"))
	}
	c.status = Resolved
	return nil
}

// String renders the support list line, e.g.
// "[2024-05-01 12:00] customer1 (CUSTOMER): cold food [PENDING]".
func (c *Complaint) String() string {
	return fmt.Sprintf("[%s] %s (%s): %s [%s]",
		c.createdAt.Format("2006-01-02 15:04"), c.author, c.role, c.message, c.status)
}

func (c *Complaint) Clone() *Complaint {
	cp := *c
	return &cp
}
