package response

import "gyeonjeok/internal/domain/entities"

// Collection responses. Mutations return the full updated collection plus a
// message so the caller resyncs without a follow-up read; plain GETs carry
// the collection only.

type SupplierCollectionResponse struct {
	Message   string              `json:"message,omitempty"`
	Suppliers []entities.Supplier `json:"suppliers"`
}

type ClientCollectionResponse struct {
	Message string            `json:"message,omitempty"`
	Clients []entities.Client `json:"clients"`
}

type ItemTemplateCollectionResponse struct {
	Message       string                  `json:"message,omitempty"`
	ItemTemplates []entities.ItemTemplate `json:"itemTemplates"`
}

type EstimateCollectionResponse struct {
	Message   string                    `json:"message,omitempty"`
	Estimates []entities.EstimateRecord `json:"estimates"`
}

type EstimateResponse struct {
	Message  string                  `json:"message"`
	Estimate entities.EstimateRecord `json:"estimate"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
