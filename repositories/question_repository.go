package repositories

import (
	"qna-board/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	GetByID(id uint) (*models.Question, error)
	Update(question *models.Question) error
	Delete(id uint) error
	Search(keyword string, offset, limit int) ([]models.Question, int64, error)
	AddVoter(questionID, userID uint) error
	CountVoters(questionID uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.Preload("Author").Preload("Voters").First(&question, id).Error
	return &question, err
}

func (r *questionRepository) Update(question *models.Question) error {
	return r.db.Omit(clause.Associations).Save(question).Error
}

// Delete removes the question together with its answers and all voter rows
// in one transaction. The cascade is spelled out here instead of relying on
// database-level ON DELETE rules so it stays visible and testable.
func (r *questionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var answerIDs []uint
		if err := tx.Model(&models.Answer{}).Where("question_id = ?", id).Pluck("id", &answerIDs).Error; err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			if err := tx.Where("answer_id IN ?", answerIDs).Delete(&models.AnswerVoter{}).Error; err != nil {
				return err
			}
			if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.QuestionVoter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Question{}, id).Error
	})
}

// Search returns one page of questions, newest first, plus the total match
// count. A non-empty keyword is matched as a substring against the subject,
// the content, the author's username, any answer's content and any answer
// author's username. The answer joins can fan out to several rows per
// question, so both the count and the page select DISTINCT questions.
func (r *questionRepository) Search(keyword string, offset, limit int) ([]models.Question, int64, error) {
	scope := keywordScope(keyword)

	var total int64
	if err := r.db.Model(&models.Question{}).Scopes(scope).
		Distinct("questions.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []models.Question
	err := r.db.Model(&models.Question{}).Scopes(scope).
		Distinct("questions.*").
		Preload("Author").
		Order("questions.created_at DESC, questions.id DESC").
		Offset(offset).Limit(limit).
		Find(&questions).Error

	return questions, total, err
}

func keywordScope(keyword string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if keyword == "" {
			return db
		}
		pattern := "%" + keyword + "%"
		return db.
			Joins("LEFT JOIN users AS question_authors ON question_authors.id = questions.author_id").
			Joins("LEFT JOIN answers ON answers.question_id = questions.id").
			Joins("LEFT JOIN users AS answer_authors ON answer_authors.id = answers.author_id").
			Where(`questions.subject LIKE ?
				OR questions.content LIKE ?
				OR question_authors.username LIKE ?
				OR answers.content LIKE ?
				OR answer_authors.username LIKE ?`,
				pattern, pattern, pattern, pattern, pattern)
	}
}

func (r *questionRepository) AddVoter(questionID, userID uint) error {
	voter := models.QuestionVoter{QuestionID: questionID, UserID: userID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&voter).Error
}

func (r *questionRepository) CountVoters(questionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.QuestionVoter{}).Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}
