package domain

// Company groups users on both sides of the marketplace; partnerships are
// defined between an owner company and a manager company.
type Company struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedOn string `json:"created_on"`
}
