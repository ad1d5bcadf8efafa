package scorer

import (
	"strings"

	"github.com/bigredeye/gradebook/internal/models"
)

type Order int

const (
	OrderAscending Order = iota
	OrderDescending
)

// ParseOrder treats anything but "desc" as ascending.
func ParseOrder(order string) Order {
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		return OrderDescending
	}
	return OrderAscending
}

func (o Order) String() string {
	if o == OrderDescending {
		return "desc"
	}
	return "asc"
}

type SubjectAverage struct {
	// Nil for marks that lost their subject.
	SubjectID    *uint
	SubjectName  string
	AverageMarks float64
	Count        int
}

type RankedStudent struct {
	Student      models.Student
	AverageMarks float64
}

type Standings struct {
	Order    Order
	Students []RankedStudent
}
