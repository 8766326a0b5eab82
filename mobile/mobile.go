//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 构建 Android / iOS 包：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.fourwalls -o build/android/fourwalls.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/FourWalls.xcframework ./mobile
//
// 移动端不读取外部配置文件，使用内置默认数值。
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/fourwalls/pkg/app"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/logger"
)

func init() {
	if err := logger.InitLogger(logger.Options{Verbose: true}); err != nil {
		panic(err)
	}

	gameApp, err := app.NewApp(app.Config{GameConfig: config.DefaultGameConfig()})
	if err != nil {
		logger.Log.Fatalf("[Mobile] failed to initialize: %v", err)
	}
	mobile.SetGame(gameApp)
}

// Dummy 空导出函数，确保包被 ebitenmobile 识别
func Dummy() {}
