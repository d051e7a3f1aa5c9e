package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tokenKeyLength matches the 40 character keys clients already store
const tokenKeyLength = 40

// RegisterInput is the body of a registration request
type RegisterInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	ApartmentNo string `json:"apartment_no"`
	Role        string `json:"role"`
}

// ProfileInput carries the profile fields a resident may change; nil fields are left alone
type ProfileInput struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password with a stored hash
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register validates the input, hashes the password and stores a new resident.
// Every invalid field is reported in one ValidationError.
func Register(db *gorm.DB, in RegisterInput, cost int) (*models.Resident, error) {
	in.Username = strings.TrimSpace(in.Username)
	fields := make(map[string]string)

	required := map[string]string{
		"username":     in.Username,
		"password":     in.Password,
		"phone_number": in.PhoneNumber,
		"apartment_no": in.ApartmentNo,
		"role":         in.Role,
	}
	for name, value := range required {
		if value == "" {
			fields[name] = "This field is required."
		}
	}

	role, err := models.ParseRole(in.Role)
	if in.Role != "" && err != nil {
		fields["role"] = fmt.Sprintf("%q is not a valid choice.", in.Role)
	}
	checkLength(fields, "username", in.Username, 150)
	checkLength(fields, "phone_number", in.PhoneNumber, 15)
	checkLength(fields, "apartment_no", in.ApartmentNo, 20)
	checkEmail(fields, in.Email)

	if _, taken := fields["username"]; !taken && in.Username != "" {
		var count int64
		if err := db.Model(&models.Resident{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
			return nil, types.InternalError(err)
		}
		if count > 0 {
			fields["username"] = "A user with that username already exists."
		}
	}

	if len(fields) > 0 {
		return nil, types.ValidationError("Registration failed", fields)
	}

	hash, err := HashPassword(in.Password, cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, types.ValidationError("Registration failed", map[string]string{"password": "Password is too long."})
		}
		return nil, types.InternalError(err)
	}

	resident := &models.Resident{
		Username:    in.Username,
		Password:    hash,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		ApartmentNo: in.ApartmentNo,
		Role:        role,
		Status:      models.ResidentActive,
	}
	if err := db.Create(resident).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return resident, nil
}

// Authenticate checks credentials and returns the resident with their token.
// The token is created on first login and reused afterwards.
func Authenticate(db *gorm.DB, username, password string) (*models.Resident, string, error) {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, "", types.MissingFields(missing...)
	}

	var resident models.Resident
	if err := db.Where("username = ?", username).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", types.InvalidCredentials()
		}
		return nil, "", types.InternalError(err)
	}
	if !CheckPassword(password, resident.Password) {
		return nil, "", types.InvalidCredentials()
	}

	key, err := newTokenKey()
	if err != nil {
		return nil, "", types.InternalError(err)
	}
	token := models.AuthToken{}
	if err := db.Where(models.AuthToken{ResidentID: resident.ID}).
		Attrs(models.AuthToken{Key: key}).
		FirstOrCreate(&token).Error; err != nil {
		return nil, "", types.InternalError(err)
	}

	return &resident, token.Key, nil
}

// Revoke deletes the caller's token, ending every session that presents it
func Revoke(db *gorm.DB, caller *models.Resident) error {
	if caller == nil {
		return types.NotAuthenticated()
	}
	result := db.Where("resident_id = ?", caller.ID).Delete(&models.AuthToken{})
	if result.Error != nil {
		return types.InternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return types.NotAuthenticated()
	}
	return nil
}

// ResolveToken returns the resident that owns key
func ResolveToken(db *gorm.DB, key string) (*models.Resident, error) {
	if key == "" {
		return nil, types.NotAuthenticated()
	}
	var token models.AuthToken
	if err := db.Preload("Resident").Where(&models.AuthToken{Key: key}).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotAuthenticated()
		}
		return nil, types.InternalError(err)
	}
	if token.Resident == nil {
		return nil, types.NotAuthenticated()
	}
	return token.Resident, nil
}

// UpdateProfile applies the non-nil fields of in to the caller's account
func UpdateProfile(db *gorm.DB, caller *models.Resident, in ProfileInput) (*models.Resident, error) {
	if caller == nil {
		return nil, types.NotAuthenticated()
	}

	fields := make(map[string]string)
	updates := make(map[string]interface{})
	if in.FirstName != nil {
		checkLength(fields, "first_name", *in.FirstName, 150)
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		checkLength(fields, "last_name", *in.LastName, 150)
		updates["last_name"] = *in.LastName
	}
	if in.Email != nil {
		checkEmail(fields, *in.Email)
		updates["email"] = *in.Email
	}
	if in.PhoneNumber != nil {
		checkLength(fields, "phone_number", *in.PhoneNumber, 15)
		updates["phone_number"] = *in.PhoneNumber
	}
	if len(fields) > 0 {
		return nil, types.ValidationError("Profile update failed", fields)
	}

	if len(updates) > 0 {
		if err := db.Model(&models.Resident{}).Where("id = ?", caller.ID).Updates(updates).Error; err != nil {
			return nil, types.InternalError(err)
		}
	}
	return findByID[models.Resident](db, "Resident", caller.ID)
}

// newTokenKey draws a random hex key from two version 4 UUIDs
func newTokenKey() (string, error) {
	var b strings.Builder
	for b.Len() < tokenKeyLength {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		b.WriteString(strings.ReplaceAll(id.String(), "-", ""))
	}
	return b.String()[:tokenKeyLength], nil
}

func checkLength(fields map[string]string, name, value string, limit int) {
	if len(value) > limit {
		fields[name] = fmt.Sprintf("Ensure this field has no more than %d characters.", limit)
	}
}

func checkEmail(fields map[string]string, email string) {
	if email != "" && !strings.Contains(email, "@") {
		fields["email"] = "Enter a valid email address."
	}
}
