package models

import "time"

type Student struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	FirstName string
	Age       int
	AddressID *uint `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.Name
}

type Address struct {
	ID     uint `gorm:"primaryKey"`
	City   string
	Street string
	Number int
}
