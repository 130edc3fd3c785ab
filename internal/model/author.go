package model

// Author data model
type Author struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (Author) TableName() string {
	return "authors"
}
