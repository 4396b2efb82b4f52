package entities

// Client is the receiving party of an estimate. Name is the natural key for
// the persisted client collection, with the same upsert/delete semantics as
// Supplier.CompanyName.
type Client struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ItemTemplate is a reusable line item preset. Name is the natural key for
// the persisted template collection.
type ItemTemplate struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Spec     string `json:"spec"`
	Note     string `json:"note"`
}

// LineItem converts the template into a document row.
func (t ItemTemplate) LineItem() LineItem {
	return LineItem{
		Name:     t.Name,
		Quantity: t.Quantity,
		Price:    t.Price,
		Spec:     t.Spec,
		Note:     t.Note,
	}
}
