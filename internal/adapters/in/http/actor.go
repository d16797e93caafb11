package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the username of the caller. Credentials are checked
// upstream; the engine only resolves the username to its role.
const ActorHeader = "X-Actor"

const actorKey = "actor"

// resolveActor rejects requests without a known actor and stores the
// resolved user.Actor in the echo context.
func resolveActor(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			username := ctx.Request().Header.Get(ActorHeader)
			if username == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Kind:    "Unauthenticated",
					Message: ActorHeader + " header is required",
				})
			}

			u, err := users.Get(ctx.Request().Context(), username)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return ctx.JSON(http.StatusUnauthorized, Error{
						Code:    http.StatusUnauthorized,
						Kind:    "Unauthenticated",
						Message: "unknown user " + username,
					})
				}
				return fail(ctx, err)
			}

			ctx.Set(actorKey, u.Actor())
			return next(ctx)
		}
	}
}

func actorOf(ctx echo.Context) user.Actor {
	actor, _ := ctx.Get(actorKey).(user.Actor)
	return actor
}
