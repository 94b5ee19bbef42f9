package auth

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodgram/recipe-service/config"
	"foodgram/recipe-service/internal/dto"
	"foodgram/recipe-service/internal/middleware"
	usermodel "foodgram/recipe-service/internal/model/user"
)

var (
	// ErrReservedUsername means the username collides with the /users/me
	// endpoint.
	ErrReservedUsername = errors.New("username 'me' is reserved")
	// ErrInvalidUsername means the username contains forbidden characters.
	ErrInvalidUsername = errors.New("username may contain only letters, digits and underscores")
	// ErrEmailTaken / ErrUsernameTaken mean the uniqueness checks failed.
	ErrEmailTaken    = errors.New("email is already registered")
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrBadCredentials covers both unknown email and wrong password.
	ErrBadCredentials = errors.New("invalid email or password")
	// ErrWrongPassword means the current password check failed.
	ErrWrongPassword = errors.New("current password is incorrect")
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func validateUsername(username string) error {
	if strings.EqualFold(username, "me") {
		return ErrReservedUsername
	}
	if !usernameRegex.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// Register creates a user account with a bcrypt-hashed password.
func (s *AuthService) Register(req dto.RegisterRequest) (*usermodel.User, error) {
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}

	if err := s.checkTaken(req.Email, req.Username); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := usermodel.User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Role:         usermodel.RoleUser,
	}
	if err := s.db.Create(&newUser).Error; err != nil {
		// A concurrent registration can slip between checkTaken and the
		// insert; the unique index rejects the second row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if terr := s.checkTaken(req.Email, req.Username); terr != nil {
				return nil, terr
			}
		}
		return nil, err
	}
	return &newUser, nil
}

// checkTaken reports which uniqueness rule an email/username pair breaks,
// email first.
func (s *AuthService) checkTaken(email, username string) error {
	var existing usermodel.User
	if err := s.db.Where("username = ? OR email = ?", username, email).
		First(&existing).Error; err != nil {
		return nil
	}
	if existing.Email == email {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// Login checks the credentials and issues a signed token.
func (s *AuthService) Login(req dto.LoginRequest) (string, *usermodel.User, error) {
	var u usermodel.User
	if err := s.db.Where("email = ?", req.Email).First(&u).Error; err != nil {
		return "", nil, ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := IssueToken(&u)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

// SetPassword verifies the current password, then replaces the hash.
func (s *AuthService) SetPassword(userID uint, req dto.SetPasswordRequest) error {
	var u usermodel.User
	if err := s.db.First(&u, userID).Error; err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Model(&u).Update("password_hash", string(hash)).Error
}

// IssueToken signs an HMAC JWT carrying the user's identity and role.
func IssueToken(u *usermodel.User) (string, error) {
	expireHours := config.Conf.JWT.ExpireTime
	if expireHours == 0 {
		expireHours = 24
	}

	claims := middleware.Claims{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		IsSuperuser: u.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.JWT.Secret))
}
