package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Product is a catalog-owned product. Only the attributes the scoring
// pipeline reads, plus the denormalized score summary it writes.
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"column:name;not null" json:"name"`
	Category      string         `gorm:"column:category;not null;index" json:"category"`
	Subcategory   string         `gorm:"column:subcategory" json:"subcategory"`
	Tags          datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags"`
	IsEcoFriendly bool           `gorm:"column:is_eco_friendly;not null;default:false" json:"is_eco_friendly"`
	Price         float64        `gorm:"column:price;not null;default:0" json:"price"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`

	EcoScoreValue          float64    `gorm:"column:ecoscore_value;not null;default:0" json:"ecoscore_value"`
	EcoScoreGrade          string     `gorm:"column:ecoscore_grade" json:"ecoscore_grade"`
	EcoScoreLastCalculated *time.Time `gorm:"column:ecoscore_last_calculated" json:"ecoscore_last_calculated,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

func (p *Product) Ref() ProductRef { return CatalogRef(p.ID) }

func (p *Product) TagList() []string { return decodeTags(p.Tags) }

// MerchantProduct is a merchant-owned listing, disjoint from the catalog.
type MerchantProduct struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	MerchantID    uuid.UUID      `gorm:"type:uuid;column:merchant_id;index" json:"merchant_id"`
	Name          string         `gorm:"column:name;not null" json:"name"`
	Category      string         `gorm:"column:category;not null;index" json:"category"`
	Subcategory   string         `gorm:"column:subcategory" json:"subcategory"`
	Tags          datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags"`
	IsEcoFriendly bool           `gorm:"column:is_eco_friendly;not null;default:false" json:"is_eco_friendly"`
	Price         float64        `gorm:"column:price;not null;default:0" json:"price"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`

	EcoScoreValue          float64    `gorm:"column:ecoscore_value;not null;default:0" json:"ecoscore_value"`
	EcoScoreGrade          string     `gorm:"column:ecoscore_grade" json:"ecoscore_grade"`
	EcoScoreLastCalculated *time.Time `gorm:"column:ecoscore_last_calculated" json:"ecoscore_last_calculated,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (MerchantProduct) TableName() string { return "merchant_product" }

func (p *MerchantProduct) Ref() ProductRef { return MerchantRef(p.ID) }

func (p *MerchantProduct) TagList() []string { return decodeTags(p.Tags) }

func decodeTags(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	return tags
}

func EncodeTags(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}
