package domain

// ServiceType distinguishes the two order families.
type ServiceType string

const (
	ServiceTypeFuel     ServiceType = "FUEL"
	ServiceTypeMechanic ServiceType = "MECHANIC"
)

// FuelType represents the fuel variants we deliver.
type FuelType string

const (
	FuelTypePetrol FuelType = "PETROL"
	FuelTypeDiesel FuelType = "DIESEL"
)

// VehicleType represents the kind of vehicle being serviced.
type VehicleType string

const (
	VehicleTypeCar       VehicleType = "CAR"
	VehicleTypeBike      VehicleType = "BIKE"
	VehicleTypeTruck     VehicleType = "TRUCK"
	VehicleTypeGenerator VehicleType = "GENERATOR"
	VehicleTypeOther     VehicleType = "OTHER"
)

// PaymentMethod represents the payment method for an order.
type PaymentMethod string

const (
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodWallet PaymentMethod = "WALLET"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodCash   PaymentMethod = "CASH"
)

// VehicleInfo holds the vehicle details entered on an order form.
// Registration number, tank capacity and model year are free-form.
type VehicleInfo struct {
	Type               VehicleType
	RegistrationNumber string
	FuelType           FuelType
	TankCapacity       string
	ModelYear          string
}

// LocationSelection is the service/delivery address chosen on a draft.
// When UseCurrentLocation is set the manual address fields are ignored.
type LocationSelection struct {
	UseCurrentLocation bool
	AddressLine        string
	Landmark           string
	Pincode            string
}

// FuelOrderDraft is the in-progress form state for a fuel order.
type FuelOrderDraft struct {
	Vehicle        VehicleInfo
	QuantityLiters float64
	Location       LocationSelection
	TimeSlot       string
	PaymentMethod  PaymentMethod
}

// MechanicBookingDraft is the in-progress form state for a mechanic booking.
// ServiceTypeID is the required discriminator; a draft without one is not
// submittable.
type MechanicBookingDraft struct {
	Vehicle       VehicleInfo
	ServiceTypeID string
	Description   string
	Location      LocationSelection
	TimeSlot      string
	PaymentMethod PaymentMethod
}
