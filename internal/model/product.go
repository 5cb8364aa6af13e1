package model

import "time"

// Product represents an interest product registered by a user. The record is
// seeded from a shopping search result; lprice tracks the market lowest price
// and myprice is the owner's target price.
type Product struct {
	ID         int64
	UserID     int64
	Title      string
	Link       string
	Image      string
	Lprice     int
	Myprice    int
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// ProductRequest represents a product registration request.
type ProductRequest struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Image  string `json:"image"`
	Lprice int    `json:"lprice"`
}

// MyPriceRequest represents a target price update request.
type MyPriceRequest struct {
	Myprice int `json:"myprice"`
}

// ProductResponse represents a product projection for API responses.
type ProductResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Link       string    `json:"link"`
	Image      string    `json:"image"`
	Lprice     int       `json:"lprice"`
	Myprice    int       `json:"myprice"`
	CreateAt   time.Time `json:"createAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// ProductIDResponse is returned by operations that only echo the product id.
type ProductIDResponse struct {
	ID int64 `json:"id"`
}

// ProductPage is a paginated product collection.
type ProductPage struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

// NewProductResponse builds the API projection of a product.
func NewProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Title:      p.Title,
		Link:       p.Link,
		Image:      p.Image,
		Lprice:     p.Lprice,
		Myprice:    p.Myprice,
		CreateAt:   p.CreatedAt,
		ModifiedAt: p.ModifiedAt,
	}
}
