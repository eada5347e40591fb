package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"trivia_quiz_backend/internal/model"
)

// LoadSeedFile 读取种子文件（JSON 数组）。
// 启动阶段任何读取或解析错误都必须让进程直接失败，
// 不允许带着空题库或半个题库对外服务。
func LoadSeedFile(path string) ([]model.SeedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []model.SeedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return entries, nil
}
