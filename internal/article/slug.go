package article

import "strings"

// MakeSlug 由标题生成 slug：转小写，空格替换为连字符
func MakeSlug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}
