package seedwatcher

import (
	"log"
	"path/filepath"
	"time"

	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchSeed 监听种子文件变更并热加载题库。
// 重新解析成功时整体替换题库内容；解析失败只记日志，
// 保留旧题库继续服务。启动阶段的加载失败语义不受影响。
func WatchSeed(seedPath string, repo *repository.QuestionRepository) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal("Failed to create seed watcher:", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(seedPath)
	if err != nil {
		log.Fatal("Failed to get absolute path:", err)
	}

	if err := watcher.Add(absPath); err != nil {
		log.Fatal("Failed to watch seed file:", err)
	}

	timer := time.NewTimer(0)
	<-timer.C

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				// 防抖处理
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(1 * time.Second)
			}
		case <-timer.C:
			entries, err := repository.LoadSeedFile(seedPath)
			if err != nil {
				logger.Log.Error("Failed to reload seed file", zap.String("path", seedPath), zap.Error(err))
				continue
			}
			repo.LoadAll(entries)
			logger.Log.Info("Question bank reloaded", zap.String("path", seedPath), zap.Int("questions", len(entries)))
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("Seed watcher error", zap.Error(err))
		}
	}
}
