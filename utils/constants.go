package utils

import "time"

// Application constants
const (
	// Application name
	AppName = "OrderDesk"

	// Default port
	DefaultPort = "8080"

	// Default log directory
	DefaultLogDir = "logs"

	// Default database settings
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "orderdesk"
	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Response cache lifetime for the order list
	DefaultCacheTTL = 5 * time.Minute

	// Per-client request rate
	DefaultRateLimitRPS   = 10
	DefaultRateLimitBurst = 20

	// Layout of date query parameters
	DateLayout = "2006-01-02"
)

// Error messages
const (
	ErrInternalServer    = "Internal server error"
	ErrRateLimited       = "Request was throttled"
	ErrFetchOrders       = "Failed to fetch orders"
	ErrFetchCatalog      = "Failed to fetch catalog"
	ErrUnsupportedExport = "Unsupported export format"
)
