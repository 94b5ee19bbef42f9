package user

import "time"

// Follow marks that a user subscribed to an author's recipes.
// The composite primary key is the uniqueness guard; user == author is
// rejected at the service layer before any write.
type Follow struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	AuthorID  uint      `gorm:"primaryKey;index" json:"author_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
