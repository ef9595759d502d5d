package models

import (
	"time"
)

type Answer struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	QuestionID uint       `json:"question_id" gorm:"not null;index"`
	Question   *Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Content    string     `json:"content" gorm:"type:text;not null"`
	AuthorID   uint       `json:"author_id" gorm:"not null;index"`
	Author     User       `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt *time.Time `json:"modified_at"`
	Voters     []User     `json:"voters,omitempty" gorm:"many2many:answer_voters"`
}

// AnswerVoter mirrors QuestionVoter for answers.
type AnswerVoter struct {
	AnswerID  uint      `json:"answer_id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
