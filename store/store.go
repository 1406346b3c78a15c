package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ctserver/model"
)

const DefaultCalorieGoal = 2000

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Store is the storage handle backing the account operations. It is passed
// into the controllers explicitly so tests can swap in an ephemeral database.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser registers a new user with a hashed password and the default
// calorie goal. The unique index on username is the source of truth for
// duplicates; the read-check only provides the common-case early answer.
func (s *Store) CreateUser(username string, password string) error {
	var existing model.User
	s.db.Where("username = ?", username).First(&existing)
	if existing.ID != 0 {
		return ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := model.User{
		Username:    username,
		Password:    hash,
		CalorieGoal: DefaultCalorieGoal,
	}
	if result := s.db.Create(&user); result.Error != nil {
		// A concurrent registration can slip past the read-check; the
		// create then trips the unique index and maps to the same answer.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return result.Error
	}
	return nil
}

// Authenticate compares the supplied password against the stored bcrypt
// hash. Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *Store) Authenticate(username string, password string) error {
	var user model.User
	s.db.Where("username = ?", username).First(&user)
	if user.ID == 0 {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *Store) Goal(username string) (int, error) {
	var user model.User
	s.db.Where("username = ?", username).First(&user)
	if user.ID == 0 {
		return 0, ErrUserNotFound
	}
	return user.CalorieGoal, nil
}

// SetGoal overwrites the calorie goal. The value is not bounds-checked.
func (s *Store) SetGoal(username string, goal int) (int, error) {
	result := s.db.Model(&model.User{}).Where("username = ?", username).Update("calorie_goal", goal)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}
	return goal, nil
}
