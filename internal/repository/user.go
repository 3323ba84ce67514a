package repository

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"cogscreen-go/internal/database"
	"cogscreen-go/internal/models"
)

func CreateUser(email, password, firstName, lastName string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:     email,
		Password:  string(hashedPassword),
		FirstName: firstName,
		LastName:  lastName,
	}
	result := database.DB.Create(user)
	return user, result.Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "email = ?", email)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, id)
	return &user, result.Error
}

func UpdateUserReminderTime(ctx context.Context, userID uint, reminderTime string) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("reminder_time", reminderTime).Error
}

// GetUsersForReminder returns the users whose daily reminder is set to the
// given "HH:MM" UTC time.
func GetUsersForReminder(hhmm string) ([]models.User, error) {
	var users []models.User
	err := database.DB.Where("reminder_time = ?", hhmm).Find(&users).Error
	return users, err
}

// CheckPassword verifies a candidate password against the stored hash.
func CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
