package services

import (
	"sort"
	"strings"
	"time"

	"qna-board/models"

	"gorm.io/gorm"
)

// In-memory repositories for the service unit tests. They mimic the bits of
// persistence behavior the services depend on: generated ids, creation
// timestamps, author resolution on reads and set semantics for voters.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeAnswerRepo struct {
	users   *fakeUserRepo
	answers map[uint]*models.Answer
	voters  map[uint]map[uint]bool
	nextID  uint
	clock   time.Time
}

func newFakeAnswerRepo(users *fakeUserRepo) *fakeAnswerRepo {
	return &fakeAnswerRepo{
		users:   users,
		answers: map[uint]*models.Answer{},
		voters:  map[uint]map[uint]bool{},
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeAnswerRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeAnswerRepo) Create(answer *models.Answer) error {
	f.nextID++
	answer.ID = f.nextID
	answer.CreatedAt = f.tick()
	stored := *answer
	f.answers[answer.ID] = &stored
	return nil
}

func (f *fakeAnswerRepo) GetByID(id uint) (*models.Answer, error) {
	a, ok := f.answers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *a
	if author, err := f.users.GetByID(a.AuthorID); err == nil {
		out.Author = *author
	}
	return &out, nil
}

func (f *fakeAnswerRepo) Update(answer *models.Answer) error {
	if _, ok := f.answers[answer.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *answer
	f.answers[answer.ID] = &stored
	return nil
}

func (f *fakeAnswerRepo) Delete(id uint) error {
	delete(f.answers, id)
	delete(f.voters, id)
	return nil
}

func (f *fakeAnswerRepo) ListByQuestion(questionID uint) ([]models.Answer, error) {
	var out []models.Answer
	for _, a := range f.answers {
		if a.QuestionID != questionID {
			continue
		}
		item := *a
		if author, err := f.users.GetByID(a.AuthorID); err == nil {
			item.Author = *author
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAnswerRepo) AddVoter(answerID, userID uint) error {
	if f.voters[answerID] == nil {
		f.voters[answerID] = map[uint]bool{}
	}
	f.voters[answerID][userID] = true
	return nil
}

func (f *fakeAnswerRepo) CountVoters(answerID uint) (int64, error) {
	return int64(len(f.voters[answerID])), nil
}

type fakeQuestionRepo struct {
	users      *fakeUserRepo
	answerRepo *fakeAnswerRepo
	questions  map[uint]*models.Question
	voters     map[uint]map[uint]bool
	nextID     uint
	clock      time.Time
}

func newFakeQuestionRepo(users *fakeUserRepo, answers *fakeAnswerRepo) *fakeQuestionRepo {
	return &fakeQuestionRepo{
		users:      users,
		answerRepo: answers,
		questions:  map[uint]*models.Question{},
		voters:     map[uint]map[uint]bool{},
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeQuestionRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeQuestionRepo) Create(question *models.Question) error {
	f.nextID++
	question.ID = f.nextID
	question.CreatedAt = f.tick()
	stored := *question
	f.questions[question.ID] = &stored
	return nil
}

func (f *fakeQuestionRepo) GetByID(id uint) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *q
	if author, err := f.users.GetByID(q.AuthorID); err == nil {
		out.Author = *author
	}
	out.Voters = nil
	for userID := range f.voters[id] {
		if voter, err := f.users.GetByID(userID); err == nil {
			out.Voters = append(out.Voters, *voter)
		}
	}
	return &out, nil
}

func (f *fakeQuestionRepo) Update(question *models.Question) error {
	if _, ok := f.questions[question.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *question
	stored.Voters = nil
	f.questions[question.ID] = &stored
	return nil
}

func (f *fakeQuestionRepo) Delete(id uint) error {
	for answerID, a := range f.answerRepo.answers {
		if a.QuestionID == id {
			delete(f.answerRepo.answers, answerID)
			delete(f.answerRepo.voters, answerID)
		}
	}
	delete(f.voters, id)
	delete(f.questions, id)
	return nil
}

func (f *fakeQuestionRepo) Search(keyword string, offset, limit int) ([]models.Question, int64, error) {
	var matched []models.Question
	for _, q := range f.questions {
		if f.matches(q, keyword) {
			item := *q
			if author, err := f.users.GetByID(q.AuthorID); err == nil {
				item.Author = *author
			}
			matched = append(matched, item)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Question{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeQuestionRepo) matches(q *models.Question, keyword string) bool {
	if keyword == "" {
		return true
	}
	if strings.Contains(q.Subject, keyword) || strings.Contains(q.Content, keyword) {
		return true
	}
	if author, err := f.users.GetByID(q.AuthorID); err == nil && strings.Contains(author.Username, keyword) {
		return true
	}
	for _, a := range f.answerRepo.answers {
		if a.QuestionID != q.ID {
			continue
		}
		if strings.Contains(a.Content, keyword) {
			return true
		}
		if author, err := f.users.GetByID(a.AuthorID); err == nil && strings.Contains(author.Username, keyword) {
			return true
		}
	}
	return false
}

func (f *fakeQuestionRepo) AddVoter(questionID, userID uint) error {
	if f.voters[questionID] == nil {
		f.voters[questionID] = map[uint]bool{}
	}
	f.voters[questionID][userID] = true
	return nil
}

func (f *fakeQuestionRepo) CountVoters(questionID uint) (int64, error) {
	return int64(len(f.voters[questionID])), nil
}

func newFakeRepos() (*fakeUserRepo, *fakeQuestionRepo, *fakeAnswerRepo) {
	users := newFakeUserRepo()
	answers := newFakeAnswerRepo(users)
	questions := newFakeQuestionRepo(users, answers)
	return users, questions, answers
}

func seedUser(users *fakeUserRepo, username string) *models.User {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     models.RoleUser,
	}
	if err := users.Create(user); err != nil {
		panic(err)
	}
	return user
}
