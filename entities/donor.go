package entities

type Donor struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"-"`
	Verified bool   `json:"verified"`

	Donations []*Donation `gorm:"foreignKey:DonorID" json:"donations,omitempty"`
	Timestamp
}
