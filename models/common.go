package models

type TxStatus string

const (
	StatusPending  TxStatus = "pending"
	StatusApproved TxStatus = "approved"
	StatusRejected TxStatus = "rejected"
)

func (s TxStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int64
	Size   int64
}

func NewPage(number, size int64) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Size
}

// TotalPages rounds up; zero items is zero pages.
func TotalPages(total, size int64) int64 {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"max=300"`
}
