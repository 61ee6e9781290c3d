// Package content 提供内容管理应用服务
package content

import (
	"strings"
	"unicode"
)

// Slugify 将标题规整为 URL slug。
// 仅保留 ASCII 小写字母与数字，其余字符折叠为单个连字符，首尾不留连字符。
// 对已是 slug 形式的输入幂等。
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
