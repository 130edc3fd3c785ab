package model

// Article data model. Links are computed per response and never stored.
type Article struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null;uniqueIndex"`
	Author   string `json:"author"`
	AuthorID int64  `json:"authorId"` // references Author.ID
	Links    []Link `json:"_links,omitempty" gorm:"-"`
}

func (Article) TableName() string {
	return "articles"
}
