package entities

type Campaign struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	CampaignDonors []*CampaignDonor `gorm:"foreignKey:CampaignID" json:"campaign_donors,omitempty"`
	Timestamp
}

type CampaignDonor struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CampaignID uint `json:"id_campaign"`
	DonorID    uint `json:"id_donor"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	Donor    *Donor    `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Timestamp
}
