package response

import "time"

type ResponseCode int

// 统一业务错误码
const (
	// 失败
	Fail ResponseCode = iota
	// 参数解析/校验错误
	ParseError
	// 资源不存在
	NotFound
	// 状态冲突（重复收藏、重复关注等）
	Conflict
	// 未认证
	Unauthorized
	// 非资源作者
	Forbidden
	// 基础设施故障（数据库不可达等）
	Internal
)

// Error API 错误响应体
type Error struct {
	Messages []string  `json:"messages"`
	Date     time.Time `json:"date"`
}

func NewError(messages ...string) Error {
	return Error{
		Messages: messages,
		Date:     time.Now(),
	}
}
