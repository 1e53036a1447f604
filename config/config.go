package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/duke-git/lancet/v2/mathutil"
	"gopkg.in/yaml.v3"

	"flist/logger"
)

const (
	defaultWidth = 80
	maxWidth     = 200
)

// DemoConfig 演示程序的配置
type DemoConfig struct {
	Delimiter string          `yaml:"Delimiter"` // 分隔两个演示函数的字符
	Dot       string          `yaml:"Dot"`       // 分隔每个小节的字符
	Width     int             `yaml:"Width"`     // 分隔线宽度
	Sections  []string        `yaml:"Sections"`  // 需要运行的小节，支持通配符
	LogToFile bool            `yaml:"LogToFile"` // 是否同时写日志文件
	Log       logger.Settings `yaml:"Log"`

	ConfigFilePath string `yaml:"-"` // 配置文件路径
}

// Config 当前生效的配置
var Config = Default()

// Default 返回默认配置
func Default() *DemoConfig {
	return &DemoConfig{
		Delimiter: "-",
		Dot:       ".",
		Width:     defaultWidth,
		Sections:  []string{"*"},
		Log: logger.Settings{
			Path:       "logs",
			Name:       "flist",
			Ext:        "log",
			TimeFormat: "2006-01-02",
			Level:      "INFO",
		},
	}
}

// Parse 解析yaml，没有出现的字段保留默认值
func Parse(data []byte) (*DemoConfig, error) {
	conf := Default()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	conf.normalize()
	return conf, nil
}

func (c *DemoConfig) normalize() {
	if c.Delimiter == "" {
		c.Delimiter = "-"
	}
	if c.Dot == "" {
		c.Dot = "."
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	c.Width = mathutil.Min(c.Width, maxWidth)
	if len(c.Sections) == 0 {
		c.Sections = []string{"*"}
	}
}

// SetupConfig 读取配置文件并替换Config
func SetupConfig(configFilePath string) error {
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	conf, err := Parse(data)
	if err != nil {
		return err
	}
	if absPath, err := filepath.Abs(configFilePath); err == nil {
		conf.ConfigFilePath = absPath
	}
	Config = conf
	return nil
}
