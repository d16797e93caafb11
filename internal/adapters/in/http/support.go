package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// FileComplaint handles POST /api/v1/complaints.
func (s *Server) FileComplaint(ctx echo.Context) error {
	var body NewComplaint
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFileComplaintCommand(actorOf(ctx), body.Message)
	if err != nil {
		return fail(ctx, err)
	}

	c, err := s.h.FileComplaint.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromComplaint(c))
}

// GetComplaints handles GET /api/v1/complaints - support staff only.
func (s *Server) GetComplaints(ctx echo.Context) error {
	query, err := queries.NewListComplaintsQuery(actorOf(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	complaints, err := s.h.ListComplaints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toComplaints(complaints))
}

// ResolveComplaint handles POST /api/v1/complaints/:id/resolve.
func (s *Server) ResolveComplaint(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid complaint id")
	}

	cmd, err := commands.NewResolveComplaintCommand(id, actorOf(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.ResolveComplaint.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RegisterUser handles POST /api/v1/users - stores the profile of an account
// whose credentials were created upstream.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body NewUser
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := user.ParseRole(body.Role)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(body.Username, role, body.Address, body.Phone, body.DisplayName)
	if err != nil {
		return fail(ctx, err)
	}

	u, err := s.h.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromUser(u))
}

// UpdateProfile handles PUT /api/v1/users/me.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var body ProfileUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(actorOf(ctx), body.Address, body.Phone)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.UpdateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// EditUser handles PUT /api/v1/users/:username - staff rewrite another
// account's role and profile.
func (s *Server) EditUser(ctx echo.Context) error {
	var body UserEdit
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := user.ParseRole(body.Role)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewEditUserCommand(actorOf(ctx), ctx.Param("username"), role,
		body.Address, body.Phone, body.DisplayName)
	if err != nil {
		return fail(ctx, err)
	}

	u, err := s.h.EditUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromUser(u))
}

// DeleteCustomer handles DELETE /api/v1/users/:username.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	cmd, err := commands.NewDeleteCustomerCommand(actorOf(ctx), ctx.Param("username"))
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetActivity handles GET /api/v1/activity.
func (s *Server) GetActivity(ctx echo.Context) error {
	query, err := queries.NewListActivityQuery(actorOf(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	entries, err := s.h.ListActivity.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toActivity(entries))
}
