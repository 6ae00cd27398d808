// internal/domain/portfolio/portfolio.go
package portfolio

import (
	"radacycling/internal/domain/i18n"
)

// Item is one showcase image on the custom-order page. Src is a raw
// object-store key resolved to a URL at read time, like product images.
type Item struct {
	Src         string     `json:"src" firestore:"src"`
	Alt         *i18n.Text `json:"alt,omitempty" firestore:"alt,omitempty"`
	Title       *i18n.Text `json:"title,omitempty" firestore:"title,omitempty"`
	Description *i18n.Text `json:"description,omitempty" firestore:"description,omitempty"`
}
