package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// 环境变量前缀
const EnvPrefix = "SKILLS_PLANET_"

// LoadEnvFile 加载 .env 文件到进程环境
// 文件不存在时静默忽略；已有的环境变量不会被覆盖
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
		log.Printf("[Config] Loaded environment from %s", p)
	}
	return nil
}

// ApplyEnv 用 SKILLS_PLANET_* 环境变量覆盖配置
// 优先级：默认值 < YAML < 环境变量 < 命令行参数
// 无法解析或非有限的数值记录警告并忽略；覆盖后的配置重新校验，
// 校验失败时配置恢复为覆盖前的值并返回错误
func (c *FieldConfig) ApplyEnv() error {
	return c.applyEnvWith(os.Getenv)
}

func (c *FieldConfig) applyEnvWith(getenv func(string) string) error {
	before := *c
	str := func(key string, dst *string) {
		if v := getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *float64) {
		v := getenv(EnvPrefix + key)
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("[Config] Warning: ignoring %s%s=%q: %v", EnvPrefix, key, v, err)
			return
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			log.Printf("[Config] Warning: ignoring %s%s=%q: not a finite number", EnvPrefix, key, v)
			return
		}
		*dst = f
	}
	integer := func(key string, dst *int) {
		v := getenv(EnvPrefix + key)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("[Config] Warning: ignoring %s%s=%q: %v", EnvPrefix, key, v, err)
			return
		}
		*dst = n
	}
	boolean := func(key string, dst *bool) {
		v := getenv(EnvPrefix + key)
		if v == "" {
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("[Config] Warning: ignoring %s%s=%q: %v", EnvPrefix, key, v, err)
			return
		}
		*dst = b
	}

	str("LANG", &c.Window.Language)
	str("TITLE", &c.Window.Title)
	integer("WIDTH", &c.Window.Width)
	integer("HEIGHT", &c.Window.Height)
	num("IDLE_YAW", &c.Field.IdleYaw)
	num("SMOOTHING", &c.Field.Smoothing)
	num("SENSITIVITY", &c.Field.Sensitivity)
	num("FONT_SIZE", &c.Field.FontSize)
	boolean("GLOW", &c.Glow.Enabled)
	integer("INTRO_MS", &c.Intro.DurationMs)
	c.Intro.DurationMs = ClampIntroDuration(c.Intro.DurationMs)

	if err := validateFieldConfig(c); err != nil {
		*c = before
		return fmt.Errorf("invalid %s* override: %w", EnvPrefix, err)
	}
	return nil
}
