package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrFileComplaintCommandIsNotConstructed = errors.New(
	"FileComplaintCommand must be created via NewFileComplaintCommand constructor",
)

// FileComplaintCommand opens a free-standing support ticket, not tied to an order.
type FileComplaintCommand struct { //nolint:recvcheck //using for validation
	author  user.Actor
	message string

	guard guard.ConstructorGuard
}

func NewFileComplaintCommand(author user.Actor, message string) (FileComplaintCommand, error) {
	var messageErr error
	if message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(author.Validate(), messageErr); err != nil {
		return FileComplaintCommand{}, err
	}
	return FileComplaintCommand{author: author, message: message, guard: guard.NewConstructorGuard()}, nil
}

func (c FileComplaintCommand) Validate() error {
	return c.guard.Validate(ErrFileComplaintCommandIsNotConstructed)
}

func (c FileComplaintCommand) Author() user.Actor {
	return c.author
}

func (c FileComplaintCommand) Message() string {
	return c.message
}
