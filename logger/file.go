package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// mustOpen 以追加方式打开dir下的日志文件，目录不存在时自动创建
func mustOpen(fileName, dir string) (*os.File, error) {
	_, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("permission denied dir: %s", dir)
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("error during make log dir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("fail to open file: %w", err)
	}
	return f, nil
}
