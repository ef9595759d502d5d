package services

import (
	"errors"
	"time"
	"unicode/utf8"

	"qna-board/models"
	"qna-board/repositories"

	"gorm.io/gorm"
)

// MaxSubjectLength is the longest allowed question subject, in runes.
const MaxSubjectLength = 200

type QuestionService interface {
	Create(req models.CreateQuestionRequest, username string) (*models.Question, error)
	Get(id uint) (*models.Question, error)
	Update(id uint, req models.UpdateQuestionRequest, username string) (*models.Question, error)
	Delete(id uint, username string) error
	Vote(id uint, username string) (int64, error)
	List(page int, keyword string) (*models.Page, error)
	Answers(questionID uint) ([]models.Answer, error)
}

type questionService struct {
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
	userRepo     repositories.UserRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository, answerRepo repositories.AnswerRepository, userRepo repositories.UserRepository) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		userRepo:     userRepo,
	}
}

func (s *questionService) Create(req models.CreateQuestionRequest, username string) (*models.Question, error) {
	if err := validateQuestionInput(req.Subject, req.Content); err != nil {
		return nil, err
	}

	author, err := s.requireUser(username)
	if err != nil {
		return nil, err
	}

	question := &models.Question{
		Subject:  req.Subject,
		Content:  req.Content,
		AuthorID: author.ID,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	return s.questionRepo.GetByID(question.ID)
}

func (s *questionService) Get(id uint) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "question not found"}
		}
		return nil, err
	}
	return question, nil
}

func (s *questionService) Update(id uint, req models.UpdateQuestionRequest, username string) (*models.Question, error) {
	if err := validateQuestionInput(req.Subject, req.Content); err != nil {
		return nil, err
	}

	question, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	// Ownership is exact username equality, regardless of role
	if question.Author.Username != username {
		return nil, models.ErrorForbidden{Message: "only the author may modify this question"}
	}

	now := time.Now()
	question.Subject = req.Subject
	question.Content = req.Content
	question.ModifiedAt = &now

	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}

	return question, nil
}

func (s *questionService) Delete(id uint, username string) error {
	question, err := s.Get(id)
	if err != nil {
		return err
	}

	if question.Author.Username != username {
		return models.ErrorForbidden{Message: "only the author may delete this question"}
	}

	return s.questionRepo.Delete(question.ID)
}

// Vote adds the caller to the question's voter set and returns the new vote
// count. Voting twice is a no-op; the author voting on their own question is
// allowed.
func (s *questionService) Vote(id uint, username string) (int64, error) {
	voter, err := s.requireUser(username)
	if err != nil {
		return 0, err
	}

	question, err := s.Get(id)
	if err != nil {
		return 0, err
	}

	if err := s.questionRepo.AddVoter(question.ID, voter.ID); err != nil {
		return 0, err
	}

	return s.questionRepo.CountVoters(question.ID)
}

// List returns one page of questions, newest first. An empty keyword matches
// everything; a page past the end comes back empty rather than failing.
func (s *questionService) List(page int, keyword string) (*models.Page, error) {
	if page < 0 {
		page = 0
	}

	questions, total, err := s.questionRepo.Search(keyword, page*models.PageSize, models.PageSize)
	if err != nil {
		return nil, err
	}

	return &models.Page{
		Items:      questions,
		TotalCount: total,
		PageSize:   models.PageSize,
		PageIndex:  page,
	}, nil
}

// Answers loads the answers of a question eagerly, oldest first.
func (s *questionService) Answers(questionID uint) ([]models.Answer, error) {
	if _, err := s.Get(questionID); err != nil {
		return nil, err
	}
	return s.answerRepo.ListByQuestion(questionID)
}

func (s *questionService) requireUser(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "unknown user"}
		}
		return nil, err
	}
	return user, nil
}

// validateQuestionInput re-checks what the binding layer already enforced.
// The service never trusts its callers with required fields.
func validateQuestionInput(subject, content string) error {
	fields := map[string][]string{}
	if subject == "" {
		fields["subject"] = append(fields["subject"], "subject must not be empty")
	} else if utf8.RuneCountInString(subject) > MaxSubjectLength {
		fields["subject"] = append(fields["subject"], "subject must be at most 200 characters")
	}
	if content == "" {
		fields["content"] = append(fields["content"], "content must not be empty")
	}
	if len(fields) > 0 {
		return models.ErrorValidation{Fields: fields}
	}
	return nil
}
