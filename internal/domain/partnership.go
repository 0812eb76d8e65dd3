package domain

type PartnershipStatus string

const (
	PartnershipStatusActive   PartnershipStatus = "ACTIVE"
	PartnershipStatusInactive PartnershipStatus = "INACTIVE"
)

// Partnership authorizes an owner company's equipment to see and bid on a
// manager company's requests. Consumed read-only by the auction core.
type Partnership struct {
	OwnerCompanyID   int32             `json:"owner_company_id"`
	ManagerCompanyID int32             `json:"manager_company_id"`
	Status           PartnershipStatus `json:"status"`
	CreatedOn        string            `json:"created_on"`
}
