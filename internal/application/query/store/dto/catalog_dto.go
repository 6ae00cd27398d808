// internal/application/query/store/dto/catalog_dto.go
package dto

import (
	cartdom "radacycling/internal/domain/cart"
	messagedom "radacycling/internal/domain/message"
	orderdom "radacycling/internal/domain/order"
	productdom "radacycling/internal/domain/product"
	reviewdom "radacycling/internal/domain/review"
)

// ProductDTO is a product with its storage keys resolved to servable URLs.
type ProductDTO struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Details       []DetailRowDTO     `json:"details,omitempty"`
	ImageURLs     []string           `json:"imageSources"`
	HoverImageURL string             `json:"imageHoverSource,omitempty"`
	ImageAlt      string             `json:"imageAlt"`
	Price         string             `json:"price"`
	OldPrice      string             `json:"oldPrice,omitempty"`
	MainVersion   bool               `json:"mainVersion"`
	VersionIDs    []string           `json:"versionsIds,omitempty"`
	Href          string             `json:"href"`
	CategoryIDs   []string           `json:"categoryIds"`
	Stock         productdom.Stock   `json:"unitsInStock"`
	AverageRating string             `json:"averageRating,omitempty"`
	Reviews       []reviewdom.Review `json:"reviews,omitempty"`
	Similar       []ProductDTO       `json:"similar,omitempty"`
	Sizes         []CategoryDTO      `json:"sizes,omitempty"`
}

type DetailRowDTO struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Enabled bool   `json:"status"`
}

// CategoryDTO is a category with resolved image URLs.
type CategoryDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	ImageURL      string `json:"imageSrc"`
	SmallImageURL string `json:"smallImageSrc,omitempty"`
	ImageAlt      string `json:"imageAlt"`
	Href          string `json:"href"`
}

// PortfolioItemDTO is one custom-work gallery tile.
type PortfolioItemDTO struct {
	URL         string `json:"src"`
	Alt         string `json:"alt,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// CartDTO is the cart screen payload.
type CartDTO struct {
	Items   []cartdom.DenormalizedItem `json:"items"`
	Total   float64                    `json:"total"`
	Notices []cartdom.Notice           `json:"notices,omitempty"`
}

// UserDataDTO is the authenticated user-data payload. Messages is populated
// only for the admin account.
type UserDataDTO struct {
	Orders   []orderdom.Order     `json:"orders"`
	Messages []messagedom.Message `json:"messages,omitempty"`
}
