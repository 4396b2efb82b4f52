package request

import "gyeonjeok/internal/domain/entities"

// Typed request bodies for the record collections. Binding rejects malformed
// JSON at the handler boundary; natural-key presence is validated by the use
// cases so the error message stays kind-specific.

type SupplierRequest struct {
	Name           string `json:"name"`
	CompanyName    string `json:"companyName"`
	Address        string `json:"address"`
	BusinessType   string `json:"businessType"`
	BusinessItem   string `json:"businessItem"`
	Phone          string `json:"phone"`
	Fax            string `json:"fax"`
	BusinessNumber string `json:"businessNumber"`
	CompanyEmail   string `json:"companyEmail"`
	AccountNumber  string `json:"accountNumber"`
	Homepage       string `json:"homepage"`
	Logo           string `json:"logo"`
	BusinessFields string `json:"businessFields"`
	FooterNotes    string `json:"footerNotes"`
}

func (r SupplierRequest) ToEntity() entities.Supplier {
	return entities.Supplier{
		Name:           r.Name,
		CompanyName:    r.CompanyName,
		Address:        r.Address,
		BusinessType:   r.BusinessType,
		BusinessItem:   r.BusinessItem,
		Phone:          r.Phone,
		Fax:            r.Fax,
		BusinessNumber: r.BusinessNumber,
		CompanyEmail:   r.CompanyEmail,
		AccountNumber:  r.AccountNumber,
		Homepage:       r.Homepage,
		Logo:           r.Logo,
		BusinessFields: r.BusinessFields,
		FooterNotes:    r.FooterNotes,
	}
}

type ClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

type ItemTemplateRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Spec     string `json:"spec"`
	Note     string `json:"note"`
}

func (r ItemTemplateRequest) ToEntity() entities.ItemTemplate {
	return entities.ItemTemplate{
		Name:     r.Name,
		Quantity: r.Quantity,
		Price:    r.Price,
		Spec:     r.Spec,
		Note:     r.Note,
	}
}
