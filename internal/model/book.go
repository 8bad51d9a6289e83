package model

type Book struct {
	BookID          int    `gorm:"primaryKey"`
	Title           string `gorm:"not null"`
	PublicationYear *int
	GenreID         *int
	Genre           *Genre   `gorm:"foreignKey:GenreID;constraint:OnDelete:SET NULL"`
	Authors         []Author `gorm:"many2many:book_authors;joinForeignKey:BookID;joinReferences:AuthorID"`
}
