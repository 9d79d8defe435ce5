package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

type Item struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  *int   `gorm:"index" json:"categoryId"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	// Price is stored in the smallest currency unit to keep money math integral.
	Price      int    `gorm:"not null" json:"price"`
	IsVeg      bool   `gorm:"not null;default:false" json:"isVeg"`
	Image      string `gorm:"not null" json:"image"`
	SpiceLevel int    `gorm:"default:0" json:"spiceLevel"` // 0-4

	// Recipe details
	Foundation  string     `json:"foundation,omitempty"`
	Ingredients StringList `gorm:"type:jsonb" json:"ingredients,omitempty"`
	Preparation string     `json:"preparation,omitempty"`
	ChefSecret  string     `json:"chefSecret,omitempty"`

	// Meta
	IsFeatured      bool             `gorm:"default:false" json:"isFeatured"`
	NutritionalInfo *NutritionalInfo `gorm:"type:jsonb" json:"nutritionalInfo,omitempty"`
	Allergens       StringList       `gorm:"type:jsonb" json:"allergens,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// StringList is a jsonb-backed array of strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

// NutritionalInfo is a jsonb-backed record; every field is optional.
type NutritionalInfo struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
}

func (n NutritionalInfo) Value() (driver.Value, error) {
	return json.Marshal(n)
}

func (n *NutritionalInfo) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, n)
	case string:
		return json.Unmarshal([]byte(v), n)
	default:
		return errors.New("unsupported source type for NutritionalInfo")
	}
}
