package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL メールアドレスからGravatarのアバターURLを生成する
func GravatarURL(email string, size int) string {
	digest := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon&s=%d", digest, size)
}
