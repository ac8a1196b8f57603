package store

import (
	"errors"
	"fmt"
	"time"

	"jewelmart/auth"
	"jewelmart/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (s *Store) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// CreateUser hashes the plaintext password before anything touches the
// database. The plaintext is never persisted or logged.
func (s *Store) CreateUser(user *models.User) (*models.User, error) {
	hash, err := auth.HashPassword(user.Password)
	if err != nil {
		return nil, fmt.Errorf("store: hash password: %w", err)
	}
	user.Password = hash
	if user.Role == "" {
		user.Role = models.RoleGuest
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// AuthenticateUser returns (nil, nil) on any mismatch — unknown email and
// wrong password are deliberately indistinguishable to the caller.
func (s *Store) AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return &user, nil
}

// UpdateUserOtp stores a fresh one-time code and resets the verified flag.
// Expiry is advisory data: the caller checks it against the clock before
// accepting a code.
func (s *Store) UpdateUserOtp(userID, code string, expiry time.Time) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"otp_code":     code,
		"otp_expiry":   expiry,
		"otp_verified": false,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateUserOtpVerified(userID string, verified bool) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("otp_verified", verified)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateUserPassword(userID, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("store: hash password: %w", err)
	}
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ClearUserOtp(userID string) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"otp_code":     nil,
		"otp_expiry":   nil,
		"otp_verified": false,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
