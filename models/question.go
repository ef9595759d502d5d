package models

import (
	"time"
)

type Question struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	Subject    string     `json:"subject" gorm:"size:200;not null"`
	Content    string     `json:"content" gorm:"type:text;not null"`
	AuthorID   uint       `json:"author_id" gorm:"not null;index"`
	Author     User       `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt *time.Time `json:"modified_at"`
	Voters     []User     `json:"voters,omitempty" gorm:"many2many:question_voters"`

	// Answers are loaded by an explicit repository query, never by
	// association traversal.
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
}

// QuestionVoter is the join row behind the Voters association. The composite
// primary key makes a repeated vote by the same user an insert conflict, so
// the voter set can never hold duplicates.
type QuestionVoter struct {
	QuestionID uint      `json:"question_id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
}
