package models

// Role defines the access level of a user account.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
)

// PaymentStatus defines the recorded status of a daily payment.
type PaymentStatus string

const (
	Paid    PaymentStatus = "PAID"
	NotPaid PaymentStatus = "NOT_PAID"
)

// StatusLabel returns the display form used in reports and exports.
func StatusLabel(s PaymentStatus) string {
	if s == Paid {
		return "Paid"
	}
	return "Not Paid"
}
