package security

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Robindeep5394188/Material-Review/internal/repository"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

var (
	jwtSecretOnce sync.Once
	jwtSecret     []byte
)

// jwtKey resolves the signing secret on first use. The server entrypoint
// loads .env before routing; one-off tools may reach this package first,
// so the fallback load stays here.
func jwtKey() []byte {
	jwtSecretOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			_ = godotenv.Load()
			secret = os.Getenv("JWT_SECRET")
		}
		if secret == "" {
			log.Fatal("JWT_SECRET environment variable is not set")
		}
		jwtSecret = []byte(secret)
	})
	return jwtSecret
}

// AuthenticateUser verifies a username/password pair against the users
// table.
func AuthenticateUser(username, password string, repo *repository.Repository) (*models.User, error) {
	var user models.User

	query := repo.GoquDBWrapper.
		Select("id", "username", "password_hash", "role").
		From("users").
		Where(goqu.Ex{"username": username})

	if _, err := query.Executor().ScanStruct(&user); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}

	return &user, nil
}

// GenerateJWT signs a token carrying the user's identity and role.
func GenerateJWT(userID int, role string, username string) (string, error) {
	claims := jwt.MapClaims{
		"userID":   strconv.Itoa(userID),
		"role":     role,
		"username": username,
		"exp":      time.Now().Add(time.Hour * 120).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// HashPassword derives the stored bcrypt hash for a new password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
