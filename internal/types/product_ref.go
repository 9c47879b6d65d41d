package types

import (
	"fmt"

	"github.com/google/uuid"
)

type ProductKind string

const (
	ProductKindCatalog  ProductKind = "catalog"
	ProductKindMerchant ProductKind = "merchant"
)

// ProductRef identifies a product from one of the two disjoint catalog
// sources. Score, mapping and history rows store it as product_type +
// product_id, so a row can never point at both sources.
type ProductRef struct {
	Kind ProductKind `json:"kind"`
	ID   uuid.UUID   `json:"id"`
}

func CatalogRef(id uuid.UUID) ProductRef {
	return ProductRef{Kind: ProductKindCatalog, ID: id}
}

func MerchantRef(id uuid.UUID) ProductRef {
	return ProductRef{Kind: ProductKindMerchant, ID: id}
}

func (r ProductRef) Valid() bool {
	if r.ID == uuid.Nil {
		return false
	}
	return r.Kind == ProductKindCatalog || r.Kind == ProductKindMerchant
}

func (r ProductRef) Key() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

func (r ProductRef) String() string {
	return r.Key()
}
