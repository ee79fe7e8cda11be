package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotelops/models"
)

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

// StaffInput carries create and update fields. Empty strings and a nil
// permission map mean "not provided".
type StaffInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	Phone       string
	Status      string
	Permissions map[string]bool
}

func parseStaffRole(s string) (models.Role, error) {
	role, ok := models.ParseRole(s)
	if !ok {
		return "", invalidf("unknown role %q", s)
	}
	if role == models.RoleOwner {
		return "", invalidf("staff cannot be given the %s role", models.RoleOwner)
	}
	return role, nil
}

func parseUserStatus(s string) (string, error) {
	switch {
	case strings.EqualFold(s, models.UserStatusActive):
		return models.UserStatusActive, nil
	case strings.EqualFold(s, models.UserStatusInactive):
		return models.UserStatusInactive, nil
	}
	return "", invalidf("unknown status %q", s)
}

// Lookup loads any user of the hotel, owner included.
func (s *StaffService) Lookup(ctx context.Context, hotelID, userID string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Where("id = ? AND hotel_id = ?", userID, hotelID).
		First(&user).Error
	if err != nil {
		return nil, notFound(err, ErrStaffNotFound)
	}
	return &user, nil
}

func (s *StaffService) List(ctx context.Context, hotelID string) ([]models.User, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ? AND role <> ?", hotelID, models.RoleOwner).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (s *StaffService) Create(ctx context.Context, hotelID string, in StaffInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" {
		return nil, invalidf("name is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, invalidf("password is required")
	}

	role := models.RoleReceptionist
	if strings.TrimSpace(in.Role) != "" {
		r, err := parseStaffRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = r
	}

	status := models.UserStatusActive
	if strings.TrimSpace(in.Status) != "" {
		st, err := parseUserStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}

	perms := role.PermissionMap()
	if in.Permissions != nil {
		perms = models.SanitizePermissions(in.Permissions)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:        name,
		Email:       email,
		Password:    hash,
		Role:        role,
		Phone:       strings.TrimSpace(in.Phone),
		Status:      status,
		Permissions: perms,
		HotelID:     hotelID,
	}

	db := s.DB.WithContext(ctx)
	taken, err := emailTaken(db, email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create staff: %w", err)
	}
	return user, nil
}

// findStaff loads a non-owner user of the hotel.
func findStaff(tx *gorm.DB, hotelID, id string) (*models.User, error) {
	var user models.User
	err := tx.Where("id = ? AND hotel_id = ? AND role <> ?", id, hotelID, models.RoleOwner).
		First(&user).Error
	if err != nil {
		return nil, notFound(err, ErrStaffNotFound)
	}
	return &user, nil
}

// Update changes the provided fields only. The password is never touched.
func (s *StaffService) Update(ctx context.Context, hotelID, id string, in StaffInput) (*models.User, error) {
	var user *models.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = findStaff(tx, hotelID, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if name := strings.TrimSpace(in.Name); name != "" {
			updates["name"] = name
		}
		if email := normalizeEmail(in.Email); email != "" && email != user.Email {
			if err := validateEmail(email); err != nil {
				return err
			}
			taken, err := emailTaken(tx, email, user.ID)
			if err != nil {
				return err
			}
			if taken {
				return ErrDuplicateEmail
			}
			updates["email"] = email
		}
		if phone := strings.TrimSpace(in.Phone); phone != "" {
			updates["phone"] = phone
		}
		if strings.TrimSpace(in.Status) != "" {
			status, err := parseUserStatus(in.Status)
			if err != nil {
				return err
			}
			updates["status"] = status
		}
		if strings.TrimSpace(in.Role) != "" {
			role, err := parseStaffRole(in.Role)
			if err != nil {
				return err
			}
			if role != user.Role {
				updates["role"] = role
				if in.Permissions == nil {
					updates["permissions"] = role.PermissionMap()
				}
			}
		}
		if in.Permissions != nil {
			updates["permissions"] = models.SanitizePermissions(in.Permissions)
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("update staff: %w", err)
		}
		return tx.Where("id = ?", user.ID).First(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a staff member. Owners and the caller's own account are
// reported as not found.
func (s *StaffService) Delete(ctx context.Context, hotelID, actorID, id string) error {
	if id == actorID {
		return ErrStaffNotFound
	}
	res := s.DB.WithContext(ctx).
		Where("id = ? AND hotel_id = ? AND role <> ?", id, hotelID, models.RoleOwner).
		Delete(&models.User{})
	if res.Error != nil {
		return fmt.Errorf("delete staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}
