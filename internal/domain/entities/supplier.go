package entities

// Supplier is the issuing business printed on the document header.
//
// CompanyName is the natural key for the persisted supplier collection:
// saving a supplier whose CompanyName matches an existing record replaces
// that record in place, and deletion addresses records by CompanyName.
// Logo, when present, is a data-URI string produced by the upload boundary.
type Supplier struct {
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
	Logo           string `json:"logo,omitempty"`
	BusinessFields string `json:"businessFields"`
	FooterNotes    string `json:"footerNotes"`
}
