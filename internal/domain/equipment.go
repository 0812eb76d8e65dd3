package domain

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusBusy        EquipmentStatus = "BUSY"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// Equipment is consumed read-only: the auction core checks ownership,
// type/subtype match and availability, it never mutates the unit itself.
type Equipment struct {
	ID        int32           `json:"id"`
	OwnerID   int32           `json:"owner_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Subtype   string          `json:"subtype"`
	Status    EquipmentStatus `json:"status"`
	Location  string          `json:"location"`
	CreatedOn string          `json:"created_on"`
}

// EligibleEquipment is one entry of the eligibility resolver's output.
type EligibleEquipment struct {
	OwnerID     int32 `json:"owner_id"`
	EquipmentID int32 `json:"equipment_id"`
}

// SubtypeCount is a presentation view over eligible equipment, grouped as
// type -> subtype with the number of matching available units.
type SubtypeCount struct {
	Subtype string `json:"subtype"`
	Count   int32  `json:"count"`
}
