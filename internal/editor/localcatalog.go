package editor

import (
	"encoding/json"

	"gyeonjeok/internal/domain/entities"
)

const (
	localSuppliersKey = "localSuppliers"
	localClientsKey   = "localClients"
)

// LocalCatalog keeps fallback copies of the supplier and client lists for
// unauthenticated use, mirroring the record service's upsert/delete
// semantics. Reads are permissive: corrupt or missing blobs come back as
// empty lists.
type LocalCatalog struct {
	kv KV
}

func NewLocalCatalog(kv KV) *LocalCatalog {
	return &LocalCatalog{kv: kv}
}

func (c *LocalCatalog) Suppliers() []entities.Supplier {
	var out []entities.Supplier
	c.load(localSuppliersKey, &out)
	if out == nil {
		out = []entities.Supplier{}
	}
	return out
}

// UpsertSupplier replaces the record matching CompanyName in place, or
// appends when no match exists.
func (c *LocalCatalog) UpsertSupplier(s entities.Supplier) error {
	list := c.Suppliers()
	replaced := false
	for i := range list {
		if list[i].CompanyName == s.CompanyName {
			list[i] = s
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, s)
	}
	return c.store(localSuppliersKey, list)
}

func (c *LocalCatalog) DeleteSupplier(companyName string) error {
	list := c.Suppliers()
	kept := make([]entities.Supplier, 0, len(list))
	for _, s := range list {
		if s.CompanyName != companyName {
			kept = append(kept, s)
		}
	}
	return c.store(localSuppliersKey, kept)
}

func (c *LocalCatalog) Clients() []entities.Client {
	var out []entities.Client
	c.load(localClientsKey, &out)
	if out == nil {
		out = []entities.Client{}
	}
	return out
}

func (c *LocalCatalog) UpsertClient(cl entities.Client) error {
	list := c.Clients()
	replaced := false
	for i := range list {
		if list[i].Name == cl.Name {
			list[i] = cl
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, cl)
	}
	return c.store(localClientsKey, list)
}

func (c *LocalCatalog) DeleteClient(name string) error {
	list := c.Clients()
	kept := make([]entities.Client, 0, len(list))
	for _, cl := range list {
		if cl.Name != name {
			kept = append(kept, cl)
		}
	}
	return c.store(localClientsKey, kept)
}

func (c *LocalCatalog) load(key string, out any) {
	raw, err := c.kv.Get(key)
	if err != nil || len(raw) == 0 {
		return
	}
	// Corrupt data reads as empty, never as an error.
	_ = json.Unmarshal(raw, out)
}

func (c *LocalCatalog) store(key string, list any) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.kv.Set(key, raw)
}
