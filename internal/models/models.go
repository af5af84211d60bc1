package models

import "time"

// Settings is the restaurant-wide configuration singleton. It is stored
// under the fixed document key "main" in the settings collection.
type Settings struct {
	ID              string   `json:"id" firestore:"-"`
	RestaurantName  string   `json:"restaurantName" firestore:"restaurantName"`
	Address         string   `json:"address,omitempty" firestore:"address,omitempty"`
	Phone           string   `json:"phone,omitempty" firestore:"phone,omitempty"`
	Currency        string   `json:"currency" firestore:"currency"`
	TaxRate         float64  `json:"taxRate" firestore:"taxRate"`
	ServiceCharge   float64  `json:"serviceCharge,omitempty" firestore:"serviceCharge,omitempty"`
	ReceiptFooter   string   `json:"receiptFooter,omitempty" firestore:"receiptFooter,omitempty"`
	OpenTime        string   `json:"openTime,omitempty" firestore:"openTime,omitempty"`   // "HH:MM"
	CloseTime       string   `json:"closeTime,omitempty" firestore:"closeTime,omitempty"` // "HH:MM"
	DaysOpen        []string `json:"daysOpen,omitempty" firestore:"daysOpen,omitempty"`
	LogoURL         string   `json:"logoUrl,omitempty" firestore:"logoUrl,omitempty"`
	SelfOrderActive bool     `json:"selfOrderActive" firestore:"selfOrderActive"`
}

type MenuItem struct {
	ID          string   `json:"id" firestore:"-"`
	Name        string   `json:"name" firestore:"name"`
	NameLower   string   `json:"nameLower,omitempty" firestore:"nameLower,omitempty"`
	Keywords    []string `json:"keywords,omitempty" firestore:"keywords,omitempty"`
	Description string   `json:"description,omitempty" firestore:"description,omitempty"`
	CategoryID  string   `json:"categoryId" firestore:"categoryId"`
	Price       float64  `json:"price" firestore:"price"`
	ImageURL    string   `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	Available   bool     `json:"available" firestore:"available"`
	SortOrder   int      `json:"sortOrder,omitempty" firestore:"sortOrder,omitempty"`
	Allergens   []string `json:"allergens,omitempty" firestore:"allergens,omitempty"`
}

type Category struct {
	ID        string `json:"id" firestore:"-"`
	Name      string `json:"name" firestore:"name"`
	SortOrder int    `json:"sortOrder,omitempty" firestore:"sortOrder,omitempty"`
	Icon      string `json:"icon,omitempty" firestore:"icon,omitempty"`
}

// OrderItem is one line of an order. MenuItemID references the menu
// collection but nothing at this layer enforces that.
type OrderItem struct {
	MenuItemID string  `json:"menuItemId" firestore:"menuItemId"`
	Name       string  `json:"name" firestore:"name"`
	Quantity   int     `json:"quantity" firestore:"quantity"`
	UnitPrice  float64 `json:"unitPrice" firestore:"unitPrice"`
	Notes      string  `json:"notes,omitempty" firestore:"notes,omitempty"`
}

type Order struct {
	ID         string      `json:"id" firestore:"-"`
	TableID    string      `json:"tableId,omitempty" firestore:"tableId,omitempty"`
	CustomerID string      `json:"customerId,omitempty" firestore:"customerId,omitempty"`
	Items      []OrderItem `json:"items" firestore:"items"`
	Status     string      `json:"status" firestore:"status"` // open, preparing, served, paid, cancelled
	Subtotal   float64     `json:"subtotal" firestore:"subtotal"`
	Discount   float64     `json:"discount,omitempty" firestore:"discount,omitempty"`
	CouponCode string      `json:"couponCode,omitempty" firestore:"couponCode,omitempty"`
	Tax        float64     `json:"tax" firestore:"tax"`
	Total      float64     `json:"total" firestore:"total"`
	PaymentRef string      `json:"paymentRef,omitempty" firestore:"paymentRef,omitempty"`
	Timestamp  time.Time   `json:"timestamp" firestore:"timestamp"`
	PaidAt     *time.Time  `json:"paidAt,omitempty" firestore:"paidAt,omitempty"`
	ServerUID  string      `json:"serverUid,omitempty" firestore:"serverUid,omitempty"`
}

// Subtotal of the line items; the stored Subtotal field is what the
// caller computed at save time, this is the recomputation used by the
// payments handler to build a charge amount.
func (o Order) ItemsTotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

type Table struct {
	ID       string `json:"id" firestore:"-"`
	Name     string `json:"name" firestore:"name"`
	ZoneID   string `json:"zoneId,omitempty" firestore:"zoneId,omitempty"`
	Seats    int    `json:"seats" firestore:"seats"`
	Status   string `json:"status" firestore:"status"` // free, occupied, reserved, cleaning
	OrderID  string `json:"orderId,omitempty" firestore:"orderId,omitempty"`
	PosX     int    `json:"posX,omitempty" firestore:"posX,omitempty"`
	PosY     int    `json:"posY,omitempty" firestore:"posY,omitempty"`
	Shape    string `json:"shape,omitempty" firestore:"shape,omitempty"`
	Rotation int    `json:"rotation,omitempty" firestore:"rotation,omitempty"`
}

type Zone struct {
	ID        string `json:"id" firestore:"-"`
	Name      string `json:"name" firestore:"name"`
	SortOrder int    `json:"sortOrder,omitempty" firestore:"sortOrder,omitempty"`
}

type InventoryItem struct {
	ID           string     `json:"id" firestore:"-"`
	Name         string     `json:"name" firestore:"name"`
	Unit         string     `json:"unit" firestore:"unit"` // kg, l, pcs
	Quantity     float64    `json:"quantity" firestore:"quantity"`
	ReorderLevel float64    `json:"reorderLevel,omitempty" firestore:"reorderLevel,omitempty"`
	CostPerUnit  float64    `json:"costPerUnit,omitempty" firestore:"costPerUnit,omitempty"`
	SupplierName string     `json:"supplierName,omitempty" firestore:"supplierName,omitempty"`
	LastRestock  *time.Time `json:"lastRestock,omitempty" firestore:"lastRestock,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty" firestore:"expiryDate,omitempty"`
}

type Customer struct {
	ID            string     `json:"id" firestore:"-"`
	Name          string     `json:"name" firestore:"name"`
	NameLower     string     `json:"nameLower,omitempty" firestore:"nameLower,omitempty"`
	Keywords      []string   `json:"keywords,omitempty" firestore:"keywords,omitempty"`
	Phone         string     `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email         string     `json:"email,omitempty" firestore:"email,omitempty"`
	Notes         string     `json:"notes,omitempty" firestore:"notes,omitempty"`
	LoyaltyPoints int        `json:"loyaltyPoints,omitempty" firestore:"loyaltyPoints,omitempty"`
	FirstVisit    *time.Time `json:"firstVisit,omitempty" firestore:"firstVisit,omitempty"`
	LastVisit     *time.Time `json:"lastVisit,omitempty" firestore:"lastVisit,omitempty"`
}

type Coupon struct {
	ID          string  `json:"id" firestore:"-"`
	Code        string  `json:"code" firestore:"code"`
	Description string  `json:"description,omitempty" firestore:"description,omitempty"`
	Type        string  `json:"type" firestore:"type"` // percent, fixed
	Value       float64 `json:"value" firestore:"value"`
	Active      bool    `json:"active" firestore:"active"`
	MaxUses     int     `json:"maxUses,omitempty" firestore:"maxUses,omitempty"`
	UsedCount   int     `json:"usedCount,omitempty" firestore:"usedCount,omitempty"`
}

type Booking struct {
	ID         string `json:"id" firestore:"-"`
	CustomerID string `json:"customerId,omitempty" firestore:"customerId,omitempty"`
	Name       string `json:"name" firestore:"name"`
	Phone      string `json:"phone,omitempty" firestore:"phone,omitempty"`
	TableID    string `json:"tableId,omitempty" firestore:"tableId,omitempty"`
	Guests     int    `json:"guests" firestore:"guests"`
	Date       string `json:"date" firestore:"date"`     // "YYYY-MM-DD"
	Time       string `json:"time" firestore:"time"`     // "HH:MM"
	Status     string `json:"status" firestore:"status"` // pending, confirmed, seated, cancelled
	Notes      string `json:"notes,omitempty" firestore:"notes,omitempty"`
}

type User struct {
	ID          string `json:"id" firestore:"-"`
	DisplayName string `json:"displayName" firestore:"displayName"`
	Email       string `json:"email,omitempty" firestore:"email,omitempty"`
	RoleID      string `json:"roleId" firestore:"roleId"`
	PIN         string `json:"pin,omitempty" firestore:"pin,omitempty"`
	Active      bool   `json:"active" firestore:"active"`
}

type Role struct {
	ID          string   `json:"id" firestore:"-"`
	Name        string   `json:"name" firestore:"name"`
	Permissions []string `json:"permissions,omitempty" firestore:"permissions,omitempty"`
}

// SeedBundle is the payload for first-time database initialization.
// Orders are deliberately absent: a fresh install starts with none.
type SeedBundle struct {
	Settings   Settings        `json:"settings"`
	Menu       []MenuItem      `json:"menu"`
	Categories []Category      `json:"categories"`
	Tables     []Table         `json:"tables"`
	Zones      []Zone          `json:"zones"`
	Inventory  []InventoryItem `json:"inventory"`
	Customers  []Customer      `json:"customers"`
	Coupons    []Coupon        `json:"coupons"`
	Bookings   []Booking       `json:"bookings"`
	Users      []User          `json:"users"`
	Roles      []Role          `json:"roles"`
}
