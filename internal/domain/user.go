package domain

import (
	"context"
	"strings"
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // 永不序列化
	FirstName    *string   `gorm:"size:64" json:"firstName"`
	LastName     *string   `gorm:"size:64" json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Wishlists []WishlistItem `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

// UserPatch 资料编辑；nil 表示不改
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil
}

type UserRepository interface {
	// Create 唯一冲突返回 ErrDuplicateEmail
	Create(ctx context.Context, u *User) error
	// FindByID / FindByEmail 不存在时返回 (nil, nil)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// UpdateProfile 不存在返回 ErrUserNotFound，邮箱冲突返回 ErrDuplicateEmail
	UpdateProfile(ctx context.Context, id uint, p UserPatch) (*User, error)
}

// NormalizeEmail 唯一性按去空格 + 小写后的值判断
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
