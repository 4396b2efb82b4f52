package editor

import (
	"sync"

	"gyeonjeok/internal/domain/entities"
)

// ClientPatch is a shallow-merge patch for the document's client. Nil fields
// are left untouched.
type ClientPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// SupplierPatch is a shallow-merge patch for the document's supplier.
type SupplierPatch struct {
	Name           *string
	CompanyName    *string
	Address        *string
	BusinessType   *string
	BusinessItem   *string
	Phone          *string
	Fax            *string
	BusinessNumber *string
	CompanyEmail   *string
	AccountNumber  *string
	Homepage       *string
	Logo           *string
	BusinessFields *string
	FooterNotes    *string
}

// ItemPatch is a shallow-merge patch for one line item.
type ItemPatch struct {
	Name     *string
	Quantity *int
	Price    *int64
	Spec     *string
	Note     *string
}

// Store holds exactly one live estimate document plus the identity of the
// persisted record it is bound to ("" = unsaved/new).
//
// Every mutation is a total function: it either fully applies or fully
// no-ops, and out-of-range indices never panic. Mutations serialize on an
// internal lock so the single-document invariant holds even if the embedding
// application calls in from multiple goroutines.
type Store struct {
	mu              sync.Mutex
	doc             entities.EstimateDocument
	currentID       string
	seq             *Sequence
	defaultSupplier entities.Supplier
}

func NewStore(seq *Sequence, defaultSupplier entities.Supplier) *Store {
	return &Store{
		doc:             NewDocument(seq, defaultSupplier),
		seq:             seq,
		defaultSupplier: defaultSupplier,
	}
}

// Document returns a copy of the current document. The item slice is copied
// so callers cannot alias the store's internal state.
func (s *Store) Document() entities.EstimateDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.doc
	doc.Items = append([]entities.LineItem(nil), s.doc.Items...)
	return doc
}

// CurrentRecordID returns the bound record id, or "" for an unsaved document.
func (s *Store) CurrentRecordID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// SetCurrentRecordID binds (or unbinds, with "") the document to a persisted
// record. Loading a record is ReplaceEstimate + SetCurrentRecordID; the store
// never couples the two.
func (s *Store) SetCurrentRecordID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = id
}

// UpdateField replaces one top-level field. Unknown fields and mismatched
// value types no-op; pairing a field with a sensible value is the caller's
// responsibility. Setting estimateDate also regenerates estimateNumber from
// the sequence keyed on the new date.
func (s *Store) UpdateField(field string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case "estimateNumber":
		if v, ok := value.(string); ok {
			s.doc.EstimateNumber = v
		}
	case "estimateDate":
		if v, ok := value.(string); ok {
			s.doc.EstimateDate = v
			s.doc.EstimateNumber = s.seq.NextForDateString(v)
		}
	case "constructionStartDate":
		if v, ok := value.(string); ok {
			s.doc.ConstructionStartDate = v
		}
	case "constructionEndDate":
		if v, ok := value.(string); ok {
			s.doc.ConstructionEndDate = v
		}
	case "constructionDate":
		if v, ok := value.(string); ok {
			s.doc.ConstructionDate = v
		}
	case "taxOption":
		switch v := value.(type) {
		case entities.TaxOption:
			s.doc.TaxOption = v
		case string:
			s.doc.TaxOption = entities.TaxOption(v)
		}
	case "businessFields":
		if v, ok := value.(string); ok {
			s.doc.BusinessFields = v
		}
	case "footerNotes":
		if v, ok := value.(string); ok {
			s.doc.FooterNotes = v
		}
	case "client":
		if v, ok := value.(entities.Client); ok {
			s.doc.Client = v
		}
	case "supplier":
		if v, ok := value.(entities.Supplier); ok {
			s.doc.Supplier = v
		}
	case "items":
		if v, ok := value.([]entities.LineItem); ok {
			s.doc.Items = append([]entities.LineItem(nil), v...)
		}
	}
}

// UpdateSupplier shallow-merges the patch into the current supplier.
func (s *Store) UpdateSupplier(patch SupplierPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sup := &s.doc.Supplier
	applyString(&sup.Name, patch.Name)
	applyString(&sup.CompanyName, patch.CompanyName)
	applyString(&sup.Address, patch.Address)
	applyString(&sup.BusinessType, patch.BusinessType)
	applyString(&sup.BusinessItem, patch.BusinessItem)
	applyString(&sup.Phone, patch.Phone)
	applyString(&sup.Fax, patch.Fax)
	applyString(&sup.BusinessNumber, patch.BusinessNumber)
	applyString(&sup.CompanyEmail, patch.CompanyEmail)
	applyString(&sup.AccountNumber, patch.AccountNumber)
	applyString(&sup.Homepage, patch.Homepage)
	applyString(&sup.Logo, patch.Logo)
	applyString(&sup.BusinessFields, patch.BusinessFields)
	applyString(&sup.FooterNotes, patch.FooterNotes)
}

// UpdateClient shallow-merges the patch into the current client and keeps
// the legacy mirror fields synchronized: for each of name/phone/email the
// mirror takes the patched value when the patch provides one and retains its
// prior value otherwise. The nested client is the source of truth.
func (s *Store) UpdateClient(patch ClientPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applyString(&s.doc.Client.Name, patch.Name)
	applyString(&s.doc.Client.Phone, patch.Phone)
	applyString(&s.doc.Client.Email, patch.Email)
	applyString(&s.doc.Client.Address, patch.Address)

	applyString(&s.doc.ClientName, patch.Name)
	applyString(&s.doc.ClientPhone, patch.Phone)
	applyString(&s.doc.ClientEmail, patch.Email)
}

// ReplaceEstimate swaps in a whole document, typically one loaded from the
// record service. The current record identity is not touched; the caller
// binds it separately via SetCurrentRecordID.
func (s *Store) ReplaceEstimate(doc entities.EstimateDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.Items = append([]entities.LineItem(nil), doc.Items...)
	s.doc = doc
}

// RemoveItem drops the item at index; out-of-range indices no-op.
func (s *Store) RemoveItem(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.doc.Items) {
		return
	}
	s.doc.Items = append(s.doc.Items[:index], s.doc.Items[index+1:]...)
}

// MoveItem removes the item at from and reinserts it at to. from == to and
// out-of-range from no-op; an out-of-range to clamps to the list bounds.
func (s *Store) MoveItem(from, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if from == to || from < 0 || from >= len(s.doc.Items) {
		return
	}
	item := s.doc.Items[from]
	rest := append(s.doc.Items[:from], s.doc.Items[from+1:]...)
	if to < 0 {
		to = 0
	}
	if to > len(rest) {
		to = len(rest)
	}
	rest = append(rest, entities.LineItem{})
	copy(rest[to+1:], rest[to:])
	rest[to] = item
	s.doc.Items = rest
}

// UpdateItem shallow-merges the patch into the item at index; out-of-range
// indices no-op.
func (s *Store) UpdateItem(index int, patch ItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.doc.Items) {
		return
	}
	it := &s.doc.Items[index]
	applyString(&it.Name, patch.Name)
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	applyString(&it.Spec, patch.Spec)
	applyString(&it.Note, patch.Note)
}

// AppendItems appends items to the end of the list, preserving their order.
func (s *Store) AppendItems(items []entities.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Items = append(s.doc.Items, items...)
}

// ResetEstimate discards the document and record identity, replacing them
// with a fresh document for today.
func (s *Store) ResetEstimate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = NewDocument(s.seq, s.defaultSupplier)
	s.currentID = ""
}

// HasDirtyState reports whether the document carries user input worth a
// confirmation prompt before a destructive reset: any item, any non-empty
// client field, any construction date, or business-fields/footer-notes text
// differing from the default supplier's defaults.
func (s *Store) HasDirtyState() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.doc.Items) > 0 {
		return true
	}
	c := s.doc.Client
	if c.Name != "" || c.Phone != "" || c.Email != "" || c.Address != "" {
		return true
	}
	if s.doc.ConstructionStartDate != "" || s.doc.ConstructionEndDate != "" || s.doc.ConstructionDate != "" {
		return true
	}
	return s.doc.BusinessFields != s.defaultSupplier.BusinessFields ||
		s.doc.FooterNotes != s.defaultSupplier.FooterNotes
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
