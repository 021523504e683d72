package user

// DemoUsername is the account served as the signed-in profile while the
// dashboard runs without sessions.
const DemoUsername = "admin"

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=4"`
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"omitempty,oneof=admin user customer manager"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
}

// UpdateUserRequest is a partial update; absent fields are left untouched.
type UpdateUserRequest struct {
	Password  *string `json:"password" validate:"omitempty,min=4"`
	FullName  *string `json:"fullName" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin user customer manager"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
}

// ChangePasswordRequest is the payload for changing the signed-in password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=4"`
}
