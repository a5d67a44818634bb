package domain

import "time"

// Product is one inventory item. The business identity is Code
// (id_producto), not the surrogate ID: imports upsert by Code, and
// outflows reference products by Code.
type Product struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code       string    `gorm:"column:id_producto;size:100;not null;uniqueIndex" json:"id_producto"`
	Name       string    `gorm:"column:nombre;size:255;not null" json:"nombre"`
	Category   string    `gorm:"column:categoria;size:100" json:"categoria"`
	Stock      int       `gorm:"column:stock;default:0" json:"stock"`
	OwnerEmail string    `gorm:"column:usuario_correo;size:255;index" json:"usuario_correo"`
	ImportedAt time.Time `gorm:"column:fecha_importacion;autoCreateTime" json:"fecha_importacion"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "productos"
}
