package http

import (
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
)

// envelope is the uniform response body: successful flags the outcome, msg
// carries the error text on failure, data carries the payload on success.
type envelope struct {
	Successful bool   `json:"successful"`
	Msg        string `json:"msg,omitempty"`
	Data       any    `json:"data,omitempty"`
}

func success(data any) envelope {
	return envelope{Successful: true, Data: data}
}

func failure(msg string) envelope {
	return envelope{Successful: false, Msg: msg}
}

type orderItemPayload struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

type orderPayload struct {
	ID             string             `json:"id"`
	TrackingNumber int64              `json:"trackingNumber"`
	OwnerID        string             `json:"ownerId,omitempty"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	Address        string             `json:"address"`
	Items          []orderItemPayload `json:"items"`
	TotalPrice     float64            `json:"totalPrice"`
	PaymentMethod  string             `json:"paymentMethod"`
	PaymentStatus  string             `json:"paymentStatus"`
	OrderStatus    string             `json:"orderStatus"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func orderPayloadFromView(view queries.OrderView) orderPayload {
	items := make([]orderItemPayload, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, orderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
		})
	}

	payload := orderPayload{
		ID:             view.ID.String(),
		TrackingNumber: view.TrackingNumber,
		Name:           view.Name,
		Email:          view.Email,
		Phone:          view.Phone,
		Address:        view.Address,
		Items:          items,
		TotalPrice:     view.TotalPrice,
		PaymentMethod:  view.PaymentMethod,
		PaymentStatus:  view.PaymentStatus.String(),
		OrderStatus:    view.Status.String(),
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
	if view.OwnerID != nil {
		payload.OwnerID = view.OwnerID.String()
	}
	return payload
}

func orderPayloadsFromViews(views []queries.OrderView) []orderPayload {
	payloads := make([]orderPayload, 0, len(views))
	for _, view := range views {
		payloads = append(payloads, orderPayloadFromView(view))
	}
	return payloads
}

func orderPayloadFromAggregate(aggregate *order.Order) orderPayload {
	items := make([]orderItemPayload, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
		})
	}

	contact := aggregate.Contact()
	payload := orderPayload{
		ID:             aggregate.ID().String(),
		TrackingNumber: aggregate.TrackingNumber(),
		Name:           contact.Name,
		Email:          contact.Email,
		Phone:          contact.Phone,
		Address:        contact.Address,
		Items:          items,
		TotalPrice:     aggregate.TotalPrice(),
		PaymentMethod:  aggregate.PaymentMethod(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		OrderStatus:    aggregate.Status().String(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
	if owner := aggregate.Owner(); owner != nil {
		payload.OwnerID = owner.String()
	}
	return payload
}

func orderPayloadsFromAggregates(aggregates []*order.Order) []orderPayload {
	payloads := make([]orderPayload, 0, len(aggregates))
	for _, aggregate := range aggregates {
		payloads = append(payloads, orderPayloadFromAggregate(aggregate))
	}
	return payloads
}

type authPayload struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func userPayloadFromAggregate(aggregate *user.User) userPayload {
	return userPayload{
		ID:    aggregate.ID().String(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
		Role:  aggregate.Role().String(),
	}
}
