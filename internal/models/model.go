package models

import "time"

// Selling modes for a listing
const (
	ModeSale    = "Sale"
	ModeAuction = "Auction"
	ModeBoth    = "Both"
)

// ValidMode reports whether mode is one of the three selling modes
func ValidMode(mode string) bool {
	return mode == ModeSale || mode == ModeAuction || mode == ModeBoth
}

// AuctionCapable reports whether listings in this mode accept bids
func AuctionCapable(mode string) bool {
	return mode == ModeAuction || mode == ModeBoth
}

// SaleCapable reports whether listings in this mode can be bought outright
func SaleCapable(mode string) bool {
	return mode == ModeSale || mode == ModeBoth
}

// Identity is the acting-user context resolved by the auth middleware
type Identity struct {
	UserID    string `json:"user_id"`
	AccountID string `json:"account_id"`
}

// Bid represents a user's bid on a listing
type Bid struct {
	UserID   string    `json:"user_id" bson:"user_id"`
	Amount   float64   `json:"amount" bson:"amount"`
	PlacedAt time.Time `json:"placed_at" bson:"placed_at"`
}

// Listing represents a sellable or auctionable catalog entry
type Listing struct {
	ID             string     `json:"id" bson:"_id"`
	Name           string     `json:"name" bson:"name"`
	Description    string     `json:"description" bson:"description"`
	SellingMode    string     `json:"selling_mode" bson:"selling_mode"`
	Categories     []string   `json:"categories" bson:"categories"`
	Price          float64    `json:"price" bson:"price"`
	Quantity       int        `json:"quantity" bson:"quantity"`
	StartingBid    float64    `json:"starting_bid" bson:"starting_bid"`
	Bids           []Bid      `json:"bids" bson:"bids"`
	AuctionEndAt   *time.Time `json:"auction_end_at,omitempty" bson:"auction_end_at,omitempty"`
	Images         []string   `json:"images" bson:"images"`
	OwnerAccountID string     `json:"owner_account_id" bson:"owner_account_id"`
	Width          *float64   `json:"width,omitempty" bson:"width,omitempty"`
	Length         *float64   `json:"length,omitempty" bson:"length,omitempty"`
	Height         *float64   `json:"height,omitempty" bson:"height,omitempty"`
	Weight         *float64   `json:"weight,omitempty" bson:"weight,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}

// CurrentBid returns the highest recorded bid amount, or the starting bid
// when no bids exist. Computed at read time, never stored.
func (l *Listing) CurrentBid() float64 {
	if len(l.Bids) == 0 {
		return l.StartingBid
	}
	high := l.Bids[0].Amount
	for _, b := range l.Bids[1:] {
		if b.Amount > high {
			high = b.Amount
		}
	}
	return high
}

// Live reports whether the listing should appear in default browse results:
// Sale-mode listings with no stock left and auctions past their end date are
// excluded. Expiry is evaluated lazily against now, there is no timer.
func (l *Listing) Live(now time.Time) bool {
	if l.SellingMode == ModeSale && l.Quantity <= 0 {
		return false
	}
	if l.AuctionEndAt != nil && l.AuctionEndAt.Before(now) {
		return false
	}
	return true
}

// User collections a listing reference can be placed in. A listing id lives
// in at most one of the three for a given user.
const (
	CollectionCart      = "cart"
	CollectionWatchlist = "watchlist"
	CollectionBidlist   = "bidlist"
)

// ValidCollection reports whether name is one of the three user collections
func ValidCollection(name string) bool {
	return name == CollectionCart || name == CollectionWatchlist || name == CollectionBidlist
}

// User represents a registered marketplace account
type User struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	StudentID      string    `json:"student_id" bson:"student_id"`
	Email          string    `json:"email" bson:"email"`
	Phone          string    `json:"phone" bson:"phone"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	AccountID      string    `json:"account_id" bson:"account_id"`
	IsStudent      bool      `json:"is_student" bson:"is_student"`
	OnCampus       bool      `json:"on_campus" bson:"on_campus"`
	BuildingNumber string    `json:"building_number" bson:"building_number"`
	RoomNumber     string    `json:"room_number" bson:"room_number"`
	MyListings     []string  `json:"my_listings" bson:"my_listings"`
	Cart           []string  `json:"cart" bson:"cart"`
	Watchlist      []string  `json:"watchlist" bson:"watchlist"`
	Bidlist        []string  `json:"bidlist" bson:"bidlist"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// ProfileUpdate carries the mutable profile fields
type ProfileUpdate struct {
	Email          string `json:"email" bson:"email"`
	Phone          string `json:"phone" bson:"phone"`
	OnCampus       bool   `json:"on_campus" bson:"on_campus"`
	BuildingNumber string `json:"building_number" bson:"building_number"`
	RoomNumber     string `json:"room_number" bson:"room_number"`
}

// Message is a directed text/image record between two users
type Message struct {
	ID      string    `json:"id" bson:"_id"`
	From    string    `json:"from" bson:"from"`
	To      string    `json:"to" bson:"to"`
	Content string    `json:"content,omitempty" bson:"content,omitempty"`
	Image   string    `json:"image,omitempty" bson:"image,omitempty"`
	SentAt  time.Time `json:"sent_at" bson:"sent_at"`
}

// Conversation summarizes the latest exchange with one counterpart
type Conversation struct {
	UserID      string    `json:"user_id" bson:"user_id"`
	Name        string    `json:"name" bson:"name"`
	AccountID   string    `json:"account_id" bson:"account_id"`
	LastMessage string    `json:"last_message" bson:"last_message"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}
