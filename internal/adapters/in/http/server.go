// Package http is the inbound HTTP adapter: echo handlers, token middleware
// and the response envelope. Handlers translate requests into commands and
// queries and map application errors onto HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"shop/internal/auth"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokens *auth.TokenService

	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusesHandler commands.UpdateOrderStatusesCommandHandler
	reconcileOwnershipHandler  commands.ReconcileOwnershipCommandHandler
	registerUserHandler        commands.RegisterUserCommandHandler

	// Query handlers
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getMyOrdersHandler      queries.GetMyOrdersQueryHandler
	trackOrderHandler       queries.TrackOrderQueryHandler
	authenticateUserHandler queries.AuthenticateUserQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	tokens *auth.TokenService,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusesHandler commands.UpdateOrderStatusesCommandHandler,
	reconcileOwnershipHandler commands.ReconcileOwnershipCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getMyOrdersHandler queries.GetMyOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
) *Server {
	return &Server{
		tokens:                     tokens,
		createOrderHandler:         createOrderHandler,
		updateOrderStatusesHandler: updateOrderStatusesHandler,
		reconcileOwnershipHandler:  reconcileOwnershipHandler,
		registerUserHandler:        registerUserHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getMyOrdersHandler:         getMyOrdersHandler,
		trackOrderHandler:          trackOrderHandler,
		authenticateUserHandler:    authenticateUserHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", s.ResolveIdentity)

	ordersGroup := api.Group("/orders")
	ordersGroup.POST("", s.CreateOrder)
	ordersGroup.GET("/my-orders", s.MyOrders, s.RequireIdentity)
	ordersGroup.GET("/track/:trackingNumber", s.TrackOrder)
	ordersGroup.GET("", s.GetOrders, s.RequireAdmin)
	ordersGroup.PATCH("/:id", s.UpdateOrder, s.RequireAdmin)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", s.Signup)
	authGroup.POST("/login", s.Login)
}

// respondError maps application errors onto HTTP statuses inside the
// response envelope.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	}

	return ctx.JSON(status, failure(err.Error()))
}

type createOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type createOrderRequest struct {
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	Phone         string                   `json:"phone"`
	Address       string                   `json:"address"`
	Items         []createOrderItemRequest `json:"items"`
	TotalPrice    float64                  `json:"totalPrice"`
	PaymentMethod string                   `json:"paymentMethod"`
}

func (r createOrderRequest) validate() error {
	if r.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if r.Email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if r.Address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if len(r.Items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range r.Items {
		if item.ProductID == "" {
			return errs.NewValueIsRequiredError("items.productId")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("items.quantity")
		}
	}
	return nil
}

// CreateOrder handles POST /api/orders. Anonymous checkout is permitted:
// without a credential the order is stored unowned and picked up later by
// ownership reconciliation.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, failure("invalid request body"))
	}
	if err := request.validate(); err != nil {
		return respondError(ctx, err)
	}

	var ownerID *kernel.UUID
	if identity := identityFromContext(ctx); identity != nil {
		ownerID = &identity.UserID
	}

	items := make([]order.LineItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, order.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		ownerID,
		order.Contact{
			Name:    request.Name,
			Email:   request.Email,
			Phone:   request.Phone,
			Address: request.Address,
		},
		items,
		request.TotalPrice,
		request.PaymentMethod,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, success(orderPayloadFromAggregate(created)))
}

// MyOrders handles GET /api/orders/my-orders. An empty owner lookup falls
// back to ownership reconciliation; that fallback is the only place
// reconciliation ever runs.
func (s *Server) MyOrders(ctx echo.Context) error {
	identity := identityFromContext(ctx)

	query, err := queries.NewGetMyOrdersQuery(identity.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getMyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if len(views) > 0 {
		return ctx.JSON(http.StatusOK, success(orderPayloadsFromViews(views)))
	}

	cmd, err := commands.NewReconcileOwnershipCommand(identity.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	reconciled, err := s.reconcileOwnershipHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(orderPayloadsFromAggregates(reconciled)))
}

// TrackOrder handles GET /api/orders/track/:trackingNumber. Public: anyone
// holding a tracking number can follow the order.
func (s *Server) TrackOrder(ctx echo.Context) error {
	trackingNumber, err := strconv.ParseInt(ctx.Param("trackingNumber"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, failure("tracking number must be an integer"))
	}

	query, err := queries.NewTrackOrderQuery(trackingNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(orderPayloadFromView(view)))
}

// GetOrders handles GET /api/orders - the back-office listing of all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	views, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(orderPayloadsFromViews(views)))
}

type updateOrderRequest struct {
	OrderStatus   *string `json:"orderStatus"`
	PaymentStatus *string `json:"paymentStatus"`
}

// UpdateOrder handles PATCH /api/orders/:id - operator status updates.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, failure("order id must be a UUID"))
	}

	var request updateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	var status *order.Status
	if request.OrderStatus != nil {
		value := order.Status(*request.OrderStatus)
		status = &value
	}

	var paymentStatus *order.PaymentStatus
	if request.PaymentStatus != nil {
		value := order.PaymentStatus(*request.PaymentStatus)
		paymentStatus = &value
	}

	cmd, err := commands.NewUpdateOrderStatusesCommand(orderID, status, paymentStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderStatusesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(orderPayloadFromAggregate(updated)))
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup. New accounts get the customer role
// and an issued token, so signup doubles as login.
func (s *Server) Signup(ctx echo.Context) error {
	var request signupRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	cmd, err := commands.NewRegisterUserCommand(request.Name, request.Email, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.tokens.Issue(created.ID(), created.Role())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, success(authPayload{
		Token: token,
		User:  userPayloadFromAggregate(created),
	}))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	query, err := queries.NewAuthenticateUserQuery(request.Email, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	authenticated, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.tokens.Issue(authenticated.ID, authenticated.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, success(authPayload{
		Token: token,
		User: userPayload{
			ID:    authenticated.ID.String(),
			Name:  authenticated.Name,
			Email: authenticated.Email,
			Role:  authenticated.Role.String(),
		},
	}))
}
