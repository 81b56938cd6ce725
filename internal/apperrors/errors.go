package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrSessionNotFound indicates that a composer session with the given ID does not exist.
	ErrSessionNotFound = errors.New("composer session not found")

	// ErrTradeNotFound indicates that a trade with the given ID does not exist in the trade set.
	ErrTradeNotFound = errors.New("trade not found")

	// ErrSupplierNotFound indicates that a supplier with the given ID does not exist.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrCustomerNotFound indicates that a customer with the given ID does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCounterpartyNotFound indicates that a counterparty with the given ID does not exist.
	ErrCounterpartyNotFound = errors.New("counterparty not found")

	// ErrPurchaseOrderNotFound indicates that a purchase order with the given ID does not exist.
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")

	// ErrSalesOrderNotFound indicates that a sales order with the given ID does not exist.
	ErrSalesOrderNotFound = errors.New("sales order not found")

	// ErrLocationNotFound indicates that a warehouse location with the given ID does not exist.
	ErrLocationNotFound = errors.New("warehouse location not found")

	// ErrHedgeNotFound indicates that a hedge with the given ID does not exist.
	ErrHedgeNotFound = errors.New("hedge not found")

	// ErrMarketPriceNotFound indicates no price record for the requested symbol.
	ErrMarketPriceNotFound = errors.New("market price not found")

	// ErrRFQRecordNotFound indicates that a dispatched RFQ record does not exist.
	ErrRFQRecordNotFound = errors.New("rfq record not found")

	// ErrSettingNotFound indicates that a system setting has not been configured.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrUnknownLegSlot indicates a leg reference other than leg1 or leg2.
	ErrUnknownLegSlot = errors.New("unknown leg slot")

	// ErrUnknownTemplate indicates a trade template name that is not defined.
	ErrUnknownTemplate = errors.New("unknown trade template")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrOrderStatusFinal indicates an attempt to change an order that has
	// reached a terminal status (completed or cancelled).
	ErrOrderStatusFinal = errors.New("order status is final")

	// ErrStockExceedsCapacity indicates that a stock level would exceed the
	// location's storage capacity.
	ErrStockExceedsCapacity = errors.New("stock exceeds location capacity")

	// ErrEntityInUse indicates that an entity cannot be deleted because other
	// records reference it.
	ErrEntityInUse = errors.New("entity is in use")

	// ErrEncryptionUnavailable indicates that no encryption key is configured
	// for a setting that must be stored encrypted.
	ErrEncryptionUnavailable = errors.New("encryption key not configured")

	// ErrDecryptionFailed indicates that a stored encrypted value could not be
	// decrypted with the configured keys.
	ErrDecryptionFailed = errors.New("failed to decrypt stored value")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToRetrieveSuppliers      = errors.New("failed to retrieve suppliers")
	ErrFailedToRetrieveCustomers      = errors.New("failed to retrieve customers")
	ErrFailedToRetrieveCounterparties = errors.New("failed to retrieve counterparties")
	ErrFailedToRetrieveOrders         = errors.New("failed to retrieve orders")
	ErrFailedToRetrieveLocations      = errors.New("failed to retrieve warehouse locations")
	ErrFailedToRetrieveHedges         = errors.New("failed to retrieve hedges")
	ErrFailedToRetrieveMarketPrices   = errors.New("failed to retrieve market prices")
	ErrFailedToRetrieveRFQRecords     = errors.New("failed to retrieve rfq records")
	ErrFailedToComputeMTM             = errors.New("failed to compute mark-to-market")
	ErrFailedToGetVersionInfo         = errors.New("failed to get version information")
)
