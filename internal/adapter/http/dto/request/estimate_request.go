package request

import "gyeonjeok/internal/domain/entities"

type LineItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Spec     string `json:"spec"`
	Note     string `json:"note"`
}

// EstimateDocumentRequest is the POST/PUT body for the estimate collection.
// It mirrors the document shape the editor serializes, legacy mirror fields
// included.
type EstimateDocumentRequest struct {
	EstimateNumber        string            `json:"estimateNumber"`
	EstimateDate          string            `json:"estimateDate"`
	ConstructionStartDate string            `json:"constructionStartDate"`
	ConstructionEndDate   string            `json:"constructionEndDate"`
	ConstructionDate      string            `json:"constructionDate"`
	Client                ClientRequest     `json:"client"`
	ClientName            string            `json:"clientName"`
	ClientPhone           string            `json:"clientPhone"`
	ClientEmail           string            `json:"clientEmail"`
	Supplier              SupplierRequest   `json:"supplier"`
	Items                 []LineItemRequest `json:"items"`
	TaxOption             string            `json:"taxOption"`
	BusinessFields        string            `json:"businessFields"`
	FooterNotes           string            `json:"footerNotes"`
}

func (r EstimateDocumentRequest) ToEntity() entities.EstimateDocument {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Spec:     it.Spec,
			Note:     it.Note,
		})
	}
	return entities.EstimateDocument{
		EstimateNumber:        r.EstimateNumber,
		EstimateDate:          r.EstimateDate,
		ConstructionStartDate: r.ConstructionStartDate,
		ConstructionEndDate:   r.ConstructionEndDate,
		ConstructionDate:      r.ConstructionDate,
		Client:                r.Client.ToEntity(),
		ClientName:            r.ClientName,
		ClientPhone:           r.ClientPhone,
		ClientEmail:           r.ClientEmail,
		Supplier:              r.Supplier.ToEntity(),
		Items:                 items,
		TaxOption:             entities.TaxOption(r.TaxOption),
		BusinessFields:        r.BusinessFields,
		FooterNotes:           r.FooterNotes,
	}
}
