package service

import "errors"

var (
	// ErrInvalidCredentials is returned when login email/password match no
	// demo account. The message doubles as the demo login hint.
	ErrInvalidCredentials = errors.New("invalid email or password, try demo@petroserve.com / demo123")

	// ErrMissingRequiredFields is returned when a signup request omits a
	// required field.
	ErrMissingRequiredFields = errors.New("name, email, password and phone are required")

	// ErrInvalidFuelType is returned when the fuel type is not petrol or diesel.
	ErrInvalidFuelType = errors.New("invalid fuel type")

	// ErrInvalidQuantity is returned when the fuel quantity is not positive.
	ErrInvalidQuantity = errors.New("fuel quantity must be greater than zero")

	// ErrQuantityTooLarge is returned when the fuel quantity exceeds a single
	// tanker load.
	ErrQuantityTooLarge = errors.New("fuel quantity exceeds the per-order limit")

	// ErrInvalidPaymentMethod is returned when the payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrServiceTypeRequired is returned when a mechanic booking is confirmed
	// without a selected service type.
	ErrServiceTypeRequired = errors.New("select a service type before confirming the booking")

	// ErrInvalidOrderID is returned when an order id is empty.
	ErrInvalidOrderID = errors.New("invalid order id")

	// ErrAgentEnRoute is returned when cancellation is attempted after the
	// agent has left for the delivery.
	ErrAgentEnRoute = errors.New("order cannot be cancelled as the agent is already on the way")

	// ErrOrderAlreadyCancelled is returned when cancelling a cancelled order.
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")

	// ErrDeliveryCompleted is returned when advancing a delivery past its
	// terminal state.
	ErrDeliveryCompleted = errors.New("delivery already in a terminal state")

	// ErrLocationUnavailable is returned when the device location cannot be
	// acquired in time.
	ErrLocationUnavailable = errors.New("unable to get location, please enter address manually")
)
