package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an inventory item (handset or accessory).
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand,omitempty"`
	HSNCode      string          `json:"hsn_code,omitempty"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	Stock        int             `json:"stock"`
}

// Customer represents a shop customer.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	GSTIN string `json:"gstin,omitempty"`
}

// Due represents an outstanding customer balance.
type Due struct {
	ID       int64           `json:"id"`
	Customer string          `json:"customer"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
}

// Repair represents a handset repair job.
type Repair struct {
	ID       int64  `json:"id"`
	Device   string `json:"device"`
	Status   string `json:"status"`
	Customer string `json:"customer,omitempty"`
}

// Notification represents a server-side notification for the current user.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
