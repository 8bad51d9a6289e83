package model

type Genre struct {
	ID        int    `gorm:"primaryKey"`
	GenreName string `gorm:"not null;uniqueIndex"`
}
