package respond

import (
	"regexp"
)

var (
	// データベースパスワードパターン（URL形式のDSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// key=value 形式のDSN (libpq) のパスワード
	kvPasswordPattern = regexp.MustCompile(`(?i)(password=)('[^']*'|\S+)`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "${1}****")

	return msg
}
