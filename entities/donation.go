package entities

type Donation struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	State   string `json:"state"` // e.g. "registered"
	DonorID uint   `json:"id_donor"`
	PointID uint   `json:"id_point"`
	Type    string `json:"type"`
	Pending bool   `json:"pending"`
	// Token holds the base64 QR payload. Empty until issuance succeeds,
	// so its presence doubles as the "intake complete" signal.
	Token string `gorm:"type:text" json:"qr_code,omitempty"`

	Donor     *Donor         `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Point     *DonationPoint `gorm:"foreignKey:PointID" json:"point,omitempty"`
	FoodItems []*FoodItem    `gorm:"foreignKey:DonationID" json:"food_items,omitempty"`
	Timestamp
}
