package api

type StudentRequest struct {
	Name      string `json:"name" form:"name" binding:"required"`
	FirstName string `json:"firstName" form:"firstName" binding:"required"`
	Age       int    `json:"age" form:"age" binding:"min=0"`
}

type Student struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	Age       int    `json:"age"`
	AddressID *uint  `json:"addressId,omitempty"`
}

type Address struct {
	City   string `json:"city" form:"city" binding:"required"`
	Street string `json:"street" form:"street" binding:"required"`
	Number int    `json:"number" form:"number" binding:"min=0"`
}

type StudentWithAddress struct {
	Name      string   `json:"name"`
	FirstName string   `json:"firstName"`
	Address   *Address `json:"address"`
}

type DeleteStudentRequest struct {
	DeleteAddress bool `form:"deleteAddress"`
}
