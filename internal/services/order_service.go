package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"glamgirl/internal/api"
	"glamgirl/internal/models"
	"glamgirl/pkg/rabbitmq"
)

// OrderEventPublisher publishes order lifecycle events. Satisfied by
// *rabbitmq.Client; nil disables publishing.
type OrderEventPublisher interface {
	PublishOrderPlaced(event rabbitmq.OrderPlacedEvent) error
}

// OrderService handles checkout: it validates the order form, submits it to
// the backend and fans out a placed-order event. The client never holds
// order state beyond the backend's response.
type OrderService struct {
	client    api.Client
	cart      *CartService
	publisher OrderEventPublisher
	validate  *validator.Validate
}

// NewOrderService creates a new OrderService. publisher may be nil when no
// message broker is configured.
func NewOrderService(client api.Client, cart *CartService, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		client:    client,
		cart:      cart,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// PlaceOrder validates the form and creates the order from the session's
// cart. The backend clears the cart on success, so the local mirror is
// refreshed afterwards; a failed refresh is logged, not fatal, the next
// fetch will reconcile it.
func (s *OrderService) PlaceOrder(ctx context.Context, form models.OrderForm) (*models.Order, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, &api.Error{Status: 400, Message: formErrorMessage(err)}
	}

	order, err := s.client.CreateOrder(ctx, form)
	if err != nil {
		return nil, err
	}

	s.publishOrderPlaced(order)

	if s.cart != nil {
		if err := s.cart.Refresh(ctx); err != nil {
			log.Printf("Warning: cart refresh after order %d failed: %v", order.ID, err)
		}
	}

	return order, nil
}

// Order fetches a placed order for the confirmation view.
func (s *OrderService) Order(ctx context.Context, id int) (*models.Order, error) {
	return s.client.GetOrder(ctx, id)
}

// publishOrderPlaced emits the event when a broker is configured. A publish
// failure never fails the order; the purchase already happened.
func (s *OrderService) publishOrderPlaced(order *models.Order) {
	if s.publisher == nil {
		log.Println("No event publisher configured, skipping order event")
		return
	}

	event := rabbitmq.OrderPlacedEvent{
		EventID:       uuid.New().String(),
		OrderID:       order.ID,
		Total:         order.GrandTotal,
		PaymentMethod: order.PaymentMethod,
		City:          order.City,
		PlacedAt:      time.Now(),
	}
	if err := s.publisher.PublishOrderPlaced(event); err != nil {
		log.Printf("Warning: failed to publish order placed event for order %d: %v", order.ID, err)
		return
	}
	log.Printf("Published order placed event for order %d", order.ID)
}

// formErrorMessage turns the first validation failure into a message the
// storefront can show as-is.
func formErrorMessage(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return "Invalid order details"
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldLabel(fieldErr.Field()))
	case "email":
		return "Please enter a valid email address"
	case "max":
		return fmt.Sprintf("%s is too long (max %s characters)", fieldLabel(fieldErr.Field()), fieldErr.Param())
	case "oneof":
		return "Please choose a valid payment method"
	default:
		return fmt.Sprintf("%s is invalid", fieldLabel(fieldErr.Field()))
	}
}

func fieldLabel(field string) string {
	switch field {
	case "CustomerName":
		return "Name"
	case "CustomerEmail":
		return "Email"
	case "CustomerPhone":
		return "Phone"
	case "ShippingAddress":
		return "Address"
	case "City":
		return "City"
	case "PostalCode":
		return "Postal code"
	default:
		return field
	}
}
