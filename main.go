package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/fourwalls/pkg/app"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/embedded"
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/gonewx/fourwalls/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "同时把日志输出到终端")
	configPath = flag.String("config", "", "游戏数值配置文件（默认使用内置 data/game.yaml）")
	logPath    = flag.String("log", "logs/fourwalls.log", "日志文件路径")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	skipMenu   = flag.Bool("play", false, "跳过主菜单直接开始游戏")
)

func main() {
	flag.Parse()

	if err := logger.InitLogger(logger.Options{FilePath: *logPath, Verbose: *verbose}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.SyncLogger()

	embedded.Init(dataFS)

	gameConfig, err := loadConfig(*configPath)
	if err != nil {
		logger.Log.Errorf("[Main] %v, using built-in defaults", err)
		gameConfig = config.DefaultGameConfig()
	}

	gameApp, err := app.NewApp(app.Config{
		GameConfig: gameConfig,
		Seed:       *seed,
		SkipMenu:   *skipMenu,
	})
	if err != nil {
		logger.Log.Fatalf("[Main] failed to initialize: %v", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
	ebiten.SetWindowTitle("Four Walls")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		logger.Log.Errorf("[Main] game loop exited: %v", err)
	}
}

func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfigFile(path)
	}
	return config.LoadGameConfig(config.DefaultGameConfigPath)
}
