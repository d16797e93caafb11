package http

import (
	"context"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the REST API exposes.
type Handlers struct {
	// Command handlers
	AddFoodItem           commands.AddFoodItemCommandHandler
	RemoveFoodItem        commands.RemoveFoodItemCommandHandler
	SetFoodStock          commands.SetFoodStockCommandHandler
	UpdateFoodPrice       commands.UpdateFoodPriceCommandHandler
	EditFoodItem          commands.EditFoodItemCommandHandler
	SetRestaurantOpen     commands.SetRestaurantOpenCommandHandler
	AddToCart             commands.AddToCartCommandHandler
	RemoveFromCart        commands.RemoveFromCartCommandHandler
	ClearCart             commands.ClearCartCommandHandler
	Reorder               commands.ReorderCommandHandler
	Checkout              commands.CheckoutCommandHandler
	ChangeStatus          commands.ChangeStatusCommandHandler
	PostMessage           commands.PostMessageCommandHandler
	RateOrder             commands.RateOrderCommandHandler
	AttachComplaint       commands.AttachComplaintCommandHandler
	ResolveOrderComplaint commands.ResolveOrderComplaintCommandHandler
	FileComplaint         commands.FileComplaintCommandHandler
	ResolveComplaint      commands.ResolveComplaintCommandHandler
	RegisterUser          commands.RegisterUserCommandHandler
	UpdateProfile         commands.UpdateProfileCommandHandler
	DeleteCustomer        commands.DeleteCustomerCommandHandler
	EditUser              commands.EditUserCommandHandler

	// Query handlers
	ListFoods        queries.ListFoodsQueryHandler
	ListCategories   queries.ListCategoriesQueryHandler
	GetFoodReviews   queries.GetFoodReviewsQueryHandler
	GetShipperRating queries.GetShipperRatingsQueryHandler
	GetCart          queries.GetCartQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	GetOrderDetails  queries.GetOrderDetailsQueryHandler
	ResolveShortID   queries.ResolveShortIDQueryHandler
	GetChat          queries.GetChatQueryHandler
	ListComplaints   queries.ListComplaintsQueryHandler
	ListActivity     queries.ListActivityQueryHandler
}

// Server translates REST requests into commands and queries. Every route
// except the public catalog and registration requires the X-Actor header.
type Server struct {
	h     Handlers
	users ports.UserRepository
}

func NewServer(handlers Handlers, users ports.UserRepository) *Server {
	return &Server{h: handlers, users: users}
}

// Register mounts the API under /api/v1. Requests are checked against the
// embedded OpenAPI document before they reach a handler.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return err
	}
	validate, err := validateRequests(doc)
	if err != nil {
		return err
	}

	public := e.Group("/api/v1", validate)
	public.GET("/openapi.yml", s.GetOpenAPI)
	public.GET("/foods", s.GetFoods)
	public.GET("/categories", s.GetCategories)
	public.GET("/foods/:id/reviews", s.GetFoodReviews)
	public.GET("/shippers/:username/ratings", s.GetShipperRatings)
	public.POST("/users", s.RegisterUser)

	api := e.Group("/api/v1", resolveActor(s.users), validate)

	api.POST("/foods", s.CreateFood)
	api.PUT("/foods/:id", s.EditFood)
	api.DELETE("/foods/:id", s.DeleteFood)
	api.PUT("/foods/:id/stock", s.SetFoodStock)
	api.PUT("/foods/:id/price", s.SetFoodPrice)
	api.PUT("/restaurants/:username/open", s.SetRestaurantOpen)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.DELETE("/cart/items/:food_id", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/reorder", s.Reorder)
	api.GET("/orders/:id/chat", s.GetChat)
	api.POST("/orders/:id/chat", s.PostMessage)
	api.POST("/orders/:id/rating", s.RateOrder)
	api.POST("/orders/:id/complaint", s.AttachComplaint)
	api.DELETE("/orders/:id/complaint", s.ResolveOrderComplaint)

	api.POST("/complaints", s.FileComplaint)
	api.GET("/complaints", s.GetComplaints)
	api.POST("/complaints/:id/resolve", s.ResolveComplaint)

	api.PUT("/users/me", s.UpdateProfile)
	api.PUT("/users/:username", s.EditUser)
	api.DELETE("/users/:username", s.DeleteCustomer)
	api.GET("/activity", s.GetActivity)
	return nil
}

// GetOpenAPI handles GET /api/v1/openapi.yml.
func (s *Server) GetOpenAPI(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", openAPISpec)
}
