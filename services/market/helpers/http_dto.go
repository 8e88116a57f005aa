package helpers

import (
	"campus-market/internal/accountService"
	"campus-market/internal/listingService"
	"campus-market/internal/models"
)

// ListingRequest is the wire shape for create and edit calls. Every field is
// optional at the decode layer; the service applies the default-substitution
// rules, so a request that omits price still creates a free listing rather
// than failing validation.
type ListingRequest struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	SellingMode  string         `json:"selling_mode"`
	Categories   CategoryList   `json:"categories"`
	Price        OptionalNumber `json:"price"`
	StartingBid  OptionalNumber `json:"starting_bid"`
	Quantity     OptionalInt    `json:"quantity"`
	DurationDays OptionalInt    `json:"duration_days"`
	Width        OptionalNumber `json:"width"`
	Length       OptionalNumber `json:"length"`
	Height       OptionalNumber `json:"height"`
	Weight       OptionalNumber `json:"weight"`
	Images       []string       `json:"images"`
}

// ToInput maps the tolerant wire fields onto the service input type.
func (r ListingRequest) ToInput() listing.Input {
	return listing.Input{
		Name:         r.Name,
		Description:  r.Description,
		SellingMode:  r.SellingMode,
		Categories:   r.Categories,
		Price:        r.Price.Ptr(),
		StartingBid:  r.StartingBid.Ptr(),
		Quantity:     r.Quantity.Ptr(),
		DurationDays: r.DurationDays.Ptr(),
		Width:        r.Width.Ptr(),
		Length:       r.Length.Ptr(),
		Height:       r.Height.Ptr(),
		Weight:       r.Weight.Ptr(),
		Images:       r.Images,
	}
}

type PlaceBidRequest struct {
	Amount OptionalNumber `json:"amount"`
}

type RegisterRequest struct {
	Name           string `json:"name"`
	StudentID      string `json:"student_id"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"`
	IsStudent      *bool  `json:"is_student"`
	OnCampus       bool   `json:"on_campus"`
	BuildingNumber string `json:"building_number"`
	RoomNumber     string `json:"room_number"`
}

// ToInput applies the student-by-default rule and maps wire fields across.
func (r RegisterRequest) ToInput() account.RegisterInput {
	isStudent := true
	if r.IsStudent != nil {
		isStudent = *r.IsStudent
	}
	return account.RegisterInput{
		Name:           r.Name,
		StudentID:      r.StudentID,
		Email:          r.Email,
		Phone:          r.Phone,
		Password:       r.Password,
		IsStudent:      isStudent,
		OnCampus:       r.OnCampus,
		BuildingNumber: r.BuildingNumber,
		RoomNumber:     r.RoomNumber,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MoveRequest struct {
	To string `json:"to"`
}

type MessageRequest struct {
	To      string `json:"to"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

// ListingView decorates a listing with its derived current bid for responses.
type ListingView struct {
	models.Listing
	CurrentBid float64 `json:"current_bid"`
}

func NewListingView(l models.Listing) ListingView {
	return ListingView{Listing: l, CurrentBid: l.CurrentBid()}
}

func NewListingViews(ls []models.Listing) []ListingView {
	views := make([]ListingView, 0, len(ls))
	for _, l := range ls {
		views = append(views, NewListingView(l))
	}
	return views
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
