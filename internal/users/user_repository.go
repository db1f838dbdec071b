package users

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/Robindeep5394188/Material-Review/internal/repository"
	custom_error "github.com/Robindeep5394188/Material-Review/pkg/errors"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

type UserRepository interface {
	PersistUser(req models.CreateUserRequest, passwordHash string) error
	GetUser(id int) (*models.User, error)
	GetUsers() ([]models.User, error)
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}

func (r *userRepositoryImpl) PersistUser(req models.CreateUserRequest, passwordHash string) error {
	query := r.repository.GoquDBWrapper.Insert("users").
		Rows(goqu.Record{
			"username":      req.Username,
			"password_hash": passwordHash,
			"role":          req.Role,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return custom_error.TranslatePQError(fmt.Errorf("failed to insert user: %w", err))
	}
	return nil
}

func (r *userRepositoryImpl) GetUsers() ([]models.User, error) {
	var users []models.User
	query := r.repository.GoquDBWrapper.
		Select("id", "username", "role").
		From("users").
		Order(goqu.I("username").Asc())

	if err := query.Executor().ScanStructs(&users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepositoryImpl) GetUser(id int) (*models.User, error) {
	var user models.User
	query := r.repository.GoquDBWrapper.
		Select("id", "username", "role").
		From("users").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("user %d not found", id)
	}
	return &user, nil
}
