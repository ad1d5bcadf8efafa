package models

// Subject names are not unique; two subjects may share a name.
type Subject struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}
