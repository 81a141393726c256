package db_models

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	BaseModel
	Name      string   `json:"name"`
	Email     string   `gorm:"uniqueIndex" json:"email"`
	PhotoURL  string   `json:"photoURL"`
	Role      UserRole `gorm:"default:user;index" json:"role"`
	IsPremium bool     `gorm:"default:false" json:"isPremium"`
}
