package model

type Author struct {
	AuthorID  int    `gorm:"primaryKey"`
	Name      string `gorm:"not null;index"`
	BirthYear *int
	Books     []Book `gorm:"many2many:book_authors;joinForeignKey:AuthorID;joinReferences:BookID"`
}
