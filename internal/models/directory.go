package models

// Doctor and Patient are owned by the records service; the queue only reads them
// to decorate responses with display names.
type Doctor struct {
	ID             string `gorm:"primaryKey;size:64"`
	Name           string `gorm:"not null"`
	Specialization string
	Department     string
}

type Patient struct {
	ID    string `gorm:"primaryKey;size:64"`
	Name  string `gorm:"not null"`
	Phone string
	Email string
}
