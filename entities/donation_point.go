package entities

type DonationPoint struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	ImageURL string  `json:"image_url,omitempty"`

	Donations []*Donation `gorm:"foreignKey:PointID" json:"donations,omitempty"`
	Timestamp
}
