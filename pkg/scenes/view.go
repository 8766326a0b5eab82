package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// worldScale 世界单位到屏幕像素的缩放
const worldScale = 0.5

const lineHeight = 16

// uiFace 界面文字字体
var uiFace = text.NewGoXFace(basicfont.Face7x13)

var (
	backgroundColor = color.RGBA{R: 34, G: 40, B: 49, A: 255}
	castleColor     = color.RGBA{R: 120, G: 110, B: 100, A: 255}
	wallColor       = color.RGBA{R: 180, G: 170, B: 150, A: 255}
	wallLowColor    = color.RGBA{R: 200, G: 80, B: 60, A: 255}
	wallBrokenColor = color.RGBA{R: 90, G: 30, B: 30, A: 255}
	goblinColor     = color.RGBA{R: 90, G: 180, B: 80, A: 255}
	spearColor      = color.RGBA{R: 60, G: 140, B: 170, A: 255}
	spawnerColor    = color.RGBA{R: 160, G: 120, B: 200, A: 255}
	hpBackColor     = color.RGBA{R: 60, G: 20, B: 20, A: 255}
	hpFillColor     = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	textColor       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	accentColor     = color.RGBA{R: 250, G: 210, B: 90, A: 255}
)

// WorldToScreen 世界坐标（Y 向上，原点在城堡）转屏幕坐标（Y 向下，原点在左上角）
func WorldToScreen(x, y float64) (float32, float32) {
	sx := ScreenWidth/2 + x*worldScale
	sy := ScreenHeight/2 - y*worldScale
	return float32(sx), float32(sy)
}

// ScreenToWorld 屏幕坐标转世界坐标
func ScreenToWorld(sx, sy int) (float64, float64) {
	x := (float64(sx) - ScreenWidth/2) / worldScale
	y := (ScreenHeight/2 - float64(sy)) / worldScale
	return x, y
}

// drawText 绘制多行文本，(x, y) 为第一行基线左端
func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-uiFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineHeight
	text.Draw(dst, s, uiFace, op)
}

// textWidth 单行文本的像素宽度
func textWidth(s string) float64 {
	w, _ := text.Measure(s, uiFace, lineHeight)
	return w
}

// drawCenteredText 水平居中绘制单行文本，y 为基线
func drawCenteredText(dst *ebiten.Image, s string, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate((ScreenWidth-textWidth(s))/2, float64(y)-uiFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, uiFace, op)
}
