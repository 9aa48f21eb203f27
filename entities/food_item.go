package entities

type FoodItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DonationID uint   `json:"id_donation"`
	Name       string `json:"name"`
	// Quantity is stored in centi-kilograms (1 unit = 10 grams).
	Quantity   int    `json:"quantity"`
	Category   string `json:"category"`
	Perishable bool   `json:"perishable"`

	Donation *Donation `gorm:"foreignKey:DonationID" json:"donation,omitempty"`
	Timestamp
}
