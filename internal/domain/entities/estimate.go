package entities

import "time"

// TaxOption selects how line item prices relate to VAT.
//
// Domain notes:
//   - "including": item prices already contain 10% VAT; the per-unit net price
//     is floor(price / 1.1), applied per item before summation.
//   - "excluding": item prices are net; VAT is added on the aggregate subtotal.

type TaxOption string

const (
	TaxOptionIncluding TaxOption = "including"
	TaxOptionExcluding TaxOption = "excluding"
)

// LineItem is one row of an estimate document.
//
// Items have no identity of their own; list position is significant and
// preserved across reorders. Quantity and Price are non-negative integers
// (won); the input boundary clamps anything else before it reaches here.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Spec     string `json:"spec"`
	Note     string `json:"note"`
}

// EstimateDocument is the aggregate root assembled by the editor.
//
// ClientName/ClientPhone/ClientEmail are legacy mirrors of Client.*; the
// nested Client value is the source of truth and the editor keeps the mirrors
// synchronized on every client update. ConstructionDate is the legacy
// single-date fallback kept for documents saved before the start/end split.
type EstimateDocument struct {
	EstimateNumber        string     `json:"estimateNumber"`
	EstimateDate          string     `json:"estimateDate"`
	ConstructionStartDate string     `json:"constructionStartDate"`
	ConstructionEndDate   string     `json:"constructionEndDate"`
	ConstructionDate      string     `json:"constructionDate"`
	Client                Client     `json:"client"`
	ClientName            string     `json:"clientName"`
	ClientPhone           string     `json:"clientPhone"`
	ClientEmail           string     `json:"clientEmail"`
	Supplier              Supplier   `json:"supplier"`
	Items                 []LineItem `json:"items"`
	TaxOption             TaxOption  `json:"taxOption"`
	BusinessFields        string     `json:"businessFields"`
	FooterNotes           string     `json:"footerNotes"`
}

// EstimateRecord is an EstimateDocument persisted in the caller's estimate
// collection.
//
// Storage model:
//   - collection key: estimates_{userId}
//   - ID is server-assigned, opaque and stable for the record's lifetime
//   - CreatedAt is set once; UpdatedAt refreshes on every save
type EstimateRecord struct {
	EstimateDocument
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
