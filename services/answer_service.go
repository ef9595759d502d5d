package services

import (
	"errors"
	"time"

	"qna-board/models"
	"qna-board/repositories"

	"gorm.io/gorm"
)

type AnswerService interface {
	Create(questionID uint, req models.CreateAnswerRequest, username string) (*models.Answer, error)
	Get(id uint) (*models.Answer, error)
	Update(id uint, req models.UpdateAnswerRequest, username string) (*models.Answer, error)
	Delete(id uint, username string) error
	Vote(id uint, username string) (int64, error)
}

type answerService struct {
	answerRepo   repositories.AnswerRepository
	questionRepo repositories.QuestionRepository
	userRepo     repositories.UserRepository
}

func NewAnswerService(answerRepo repositories.AnswerRepository, questionRepo repositories.QuestionRepository, userRepo repositories.UserRepository) AnswerService {
	return &answerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

func (s *answerService) Create(questionID uint, req models.CreateAnswerRequest, username string) (*models.Answer, error) {
	if err := validateAnswerInput(req.Content); err != nil {
		return nil, err
	}

	author, err := s.requireUser(username)
	if err != nil {
		return nil, err
	}

	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "question not found"}
		}
		return nil, err
	}

	answer := &models.Answer{
		QuestionID: questionID,
		Content:    req.Content,
		AuthorID:   author.ID,
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}

	return s.answerRepo.GetByID(answer.ID)
}

func (s *answerService) Get(id uint) (*models.Answer, error) {
	answer, err := s.answerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "answer not found"}
		}
		return nil, err
	}
	return answer, nil
}

func (s *answerService) Update(id uint, req models.UpdateAnswerRequest, username string) (*models.Answer, error) {
	if err := validateAnswerInput(req.Content); err != nil {
		return nil, err
	}

	answer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if answer.Author.Username != username {
		return nil, models.ErrorForbidden{Message: "only the author may modify this answer"}
	}

	now := time.Now()
	answer.Content = req.Content
	answer.ModifiedAt = &now

	if err := s.answerRepo.Update(answer); err != nil {
		return nil, err
	}

	return answer, nil
}

func (s *answerService) Delete(id uint, username string) error {
	answer, err := s.Get(id)
	if err != nil {
		return err
	}

	if answer.Author.Username != username {
		return models.ErrorForbidden{Message: "only the author may delete this answer"}
	}

	return s.answerRepo.Delete(answer.ID)
}

func (s *answerService) Vote(id uint, username string) (int64, error) {
	voter, err := s.requireUser(username)
	if err != nil {
		return 0, err
	}

	answer, err := s.Get(id)
	if err != nil {
		return 0, err
	}

	if err := s.answerRepo.AddVoter(answer.ID, voter.ID); err != nil {
		return 0, err
	}

	return s.answerRepo.CountVoters(answer.ID)
}

func (s *answerService) requireUser(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "unknown user"}
		}
		return nil, err
	}
	return user, nil
}

func validateAnswerInput(content string) error {
	if content == "" {
		return models.ErrorValidation{Fields: map[string][]string{
			"content": {"content must not be empty"},
		}}
	}
	return nil
}
