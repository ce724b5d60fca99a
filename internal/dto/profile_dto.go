package dto

// ProfileModel 用户资料视图模型
// Following 相对请求者实时计算，匿名访问时恒为 false
type ProfileModel struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// ProfileResponse 用户资料响应
type ProfileResponse struct {
	Profile ProfileModel `json:"profile"`
}
