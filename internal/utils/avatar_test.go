package utils

import (
	"testing"
)

func TestGravatarURL(t *testing.T) {
	// md5("test@example.com") = 55502f40dc8b7c769880b10874abc9d0
	got := GravatarURL("test@example.com", 128)
	want := "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?d=identicon&s=128"
	if got != want {
		t.Errorf("GravatarURL() = %s, want %s", got, want)
	}
}

func TestGravatarURL_NormalizesEmail(t *testing.T) {
	// 大文字や前後の空白はハッシュの前に正規化する
	a := GravatarURL("Test@Example.com ", 64)
	b := GravatarURL("test@example.com", 64)
	if a != b {
		t.Errorf("expected normalized emails to produce the same URL: %s != %s", a, b)
	}
}
