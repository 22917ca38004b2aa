package agent

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinRating = 1
	MaxRating = 10
	// NeutralRating 解析不到數字時的預設分數
	NeutralRating = 5
)

var ErrRatingUnparsable = errors.New("agent: rating is not a number")

var firstInteger = regexp.MustCompile(`\d+`)

// ParseRating 先嚴格解析整數，失敗再取第一段數字，都沒有則回傳 NeutralRating 與 ErrRatingUnparsable。
// 結果限制在 1..10。
func ParseRating(text string) (int, error) {
	s := strings.TrimSpace(text)
	if n, err := strconv.Atoi(s); err == nil {
		return clampRating(n), nil
	}
	if m := firstInteger.FindString(s); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return clampRating(n), nil
		}
	}
	return NeutralRating, fmt.Errorf("%w: %q", ErrRatingUnparsable, text)
}

func clampRating(n int) int {
	return min(max(n, MinRating), MaxRating)
}

// AverageRating 兩方平均
func AverageRating(a, b int) float64 {
	return float64(a+b) / 2
}
