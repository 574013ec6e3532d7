// Package config はコマンドのフラグに環境変数のデフォルト値を与える
package config

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

// 環境変数名
const (
	EnvDifficulty = "C4_DIFFICULTY"
	EnvDepth      = "C4_DEPTH"
	EnvGames      = "C4_GAMES"
	EnvSeed       = "C4_SEED"
	EnvParallel   = "C4_PARALLEL"
)

// Getenv は環境変数の値を返す（未設定ならdef）
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetenvInt は環境変数を整数として読む（未設定や不正値ならdef）
func GetenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// GetenvInt64 は環境変数を64ビット整数として読む
func GetenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
	}
	return def
}

// GetenvBool は環境変数を真偽値として読む
func GetenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

// NewRand は乱数生成器を返す。seedが0なら現在時刻を使う
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
