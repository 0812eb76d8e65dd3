package domain

type UserRole string

const (
	UserRoleManager UserRole = "MANAGER"
	UserRoleOwner   UserRole = "OWNER"
)

// User is consumed read-only: managers post requests, owners submit bids.
// CompanyID is nullable; a manager without a company has no eligible owners.
type User struct {
	ID          int32    `json:"id"`
	CompanyID   *int32   `json:"company_id,omitempty"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	Role        UserRole `json:"role"`
	CreatedOn   string   `json:"created_on"`
}
