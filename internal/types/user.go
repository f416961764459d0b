package types

// User carries the id coming from the legacy system, so the primary key is
// assigned, never generated.
type User struct {
	ID   int64  `gorm:"primaryKey;column:id" json:"user_id"`
	Name string `gorm:"not null;size:255;column:name" json:"name"`
}

func (User) TableName() string {
	return "users"
}
