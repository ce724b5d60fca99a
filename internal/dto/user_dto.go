package dto

// RegisterUserRequest 注册请求体
type RegisterUserRequest struct {
	User RegisterUserModel `json:"user" binding:"required"`
}

type RegisterUserModel struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// LoginUserRequest 登录请求体
type LoginUserRequest struct {
	User CredentialsModel `json:"user" binding:"required"`
}

type CredentialsModel struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest 更新当前用户请求体，省略的字段不会被修改
type UpdateUserRequest struct {
	User UpdateUserModel `json:"user" binding:"required"`
}

type UpdateUserModel struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

// UserModel 当前用户视图模型，注册/登录后携带访问令牌
type UserModel struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token,omitempty"`
}

// UserResponse 用户响应
type UserResponse struct {
	User UserModel `json:"user"`
}

// TagListResponse 标签列表响应
type TagListResponse struct {
	Tags []string `json:"tags"`
}
