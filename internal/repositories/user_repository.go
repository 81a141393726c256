package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	List(ctx context.Context, search string) ([]db_models.User, error)
	MakeAdmin(ctx context.Context, id string) error
	MakePremium(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) List(ctx context.Context, search string) ([]db_models.User, error) {
	var users []db_models.User
	tx := u.db.WithContext(ctx)
	if search != "" {
		tx = tx.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}
	if err := tx.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (u *userRepository) MakeAdmin(ctx context.Context, id string) error {
	res := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("role", db_models.RoleAdmin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MakePremium flips the premium flag on the user and mirrors it onto the
// user's biodata, if one exists, in a single transaction.
func (u *userRepository) MakePremium(ctx context.Context, id string) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user db_models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&user).Update("is_premium", true).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.Biodata{}).
			Where("user_email = ?", user.Email).
			Update("is_premium", true).Error
	})
}
