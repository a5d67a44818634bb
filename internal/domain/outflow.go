package domain

import "time"

// OutflowRecord is one recorded stock withdrawal. ProductName is a
// snapshot taken at the moment of the outflow, so renaming or deleting
// the product later does not rewrite history.
type OutflowRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductCode string    `gorm:"column:producto_id;size:100;not null;index" json:"producto_id"`
	ProductName string    `gorm:"column:nombre_producto;size:255;not null" json:"nombre_producto"`
	Quantity    int       `gorm:"column:cantidad;not null" json:"cantidad"`
	OwnerEmail  string    `gorm:"column:usuario_correo;size:255;not null;index" json:"usuario_correo"`
	CreatedAt   time.Time `gorm:"column:fecha_salida;autoCreateTime" json:"fecha_salida"`
}

// TableName Specify table name
func (OutflowRecord) TableName() string {
	return "salidas_productos"
}
