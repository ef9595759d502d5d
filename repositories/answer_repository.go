package repositories

import (
	"qna-board/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	Create(answer *models.Answer) error
	GetByID(id uint) (*models.Answer, error)
	Update(answer *models.Answer) error
	Delete(id uint) error
	ListByQuestion(questionID uint) ([]models.Answer, error)
	AddVoter(answerID, userID uint) error
	CountVoters(answerID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) GetByID(id uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.Preload("Author").Preload("Question").Preload("Question.Author").
		Preload("Voters").First(&answer, id).Error
	return &answer, err
}

func (r *answerRepository) Update(answer *models.Answer) error {
	return r.db.Omit(clause.Associations).Save(answer).Error
}

func (r *answerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_id = ?", id).Delete(&models.AnswerVoter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Answer{}, id).Error
	})
}

func (r *answerRepository) ListByQuestion(questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Where("question_id = ?", questionID).
		Preload("Author").Preload("Voters").
		Order("created_at asc, id asc").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) AddVoter(answerID, userID uint) error {
	voter := models.AnswerVoter{AnswerID: answerID, UserID: userID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&voter).Error
}

func (r *answerRepository) CountVoters(answerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.AnswerVoter{}).Where("answer_id = ?", answerID).Count(&count).Error
	return count, err
}
