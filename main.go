package main

import (
	"flag"
	"log"

	"trivia_quiz_backend/internal/app"
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configPath := flag.String("config", "configs", "配置文件目录")
	seedPath := flag.String("seed", "", "题库种子文件路径（覆盖配置文件中的 seed.path）")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seedPath != "" {
		cfg.Seed.Path = *seedPath
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
