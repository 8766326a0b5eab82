package systems

import (
	"math"

	"github.com/gonewx/fourwalls/pkg/components"
)

// ApplyWallDamage 城墙受到伤害
// 不做下限截断：Health <= 0 就是城墙被摧毁的信号
func ApplyWallDamage(wall *components.WallComponent, amount int) {
	wall.Health -= amount
}

// HealWall 修复城墙，最多恢复到 MaxHealth
func HealWall(wall *components.WallComponent, amount int) {
	wall.Health = min(wall.Health+amount, wall.MaxHealth)
}

// IncreaseWallMaxHealth 同时提高当前生命值和最大生命值
// 已损失的生命值（MaxHealth - Health）保持不变
func IncreaseWallMaxHealth(wall *components.WallComponent, amount int) {
	wall.Health += amount
	wall.MaxHealth += amount
}

// CreditExperience 为城堡增加经验，到 math.MaxUint32 为止
func CreditExperience(castle *components.CastleComponent, amount uint32) {
	castle.Exp = saturatingAdd(castle.Exp, amount)
}

func saturatingAdd(a, b uint32) uint32 {
	if b > math.MaxUint32-a {
		return math.MaxUint32
	}
	return a + b
}

// nextThreshold 阈值乘以成长倍率后向下取整，超出 uint32 范围时取 math.MaxUint32
func nextThreshold(current uint32, growth float64) uint32 {
	next := math.Floor(float64(current) * growth)
	if next >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(next)
}

// TryLevelUp 检查并执行一次升级
//
// 每次调用最多升一级：经验超出多个阈值时，剩余经验留到后续 tick 再结算。
// 只有 Exp >= NextLevelExp 时才做减法，避免无符号下溢。
func TryLevelUp(castle *components.CastleComponent) bool {
	if castle.Exp < castle.NextLevelExp {
		return false
	}
	castle.Level++
	castle.Exp -= castle.NextLevelExp
	castle.NextLevelExp = nextThreshold(castle.NextLevelExp, castle.NextLevelExpGrowth)
	return true
}

// TickTimer 推进循环计时器，返回本次是否完成了一个周期
//
// 即使 deltaTime 跨越多个周期也只报告一次完成，余数保留到下个周期。
func TickTimer(timer *components.RepeatingTimer, deltaTime float64) bool {
	timer.Finished = false
	if timer.Duration <= 0 {
		return false
	}
	timer.Elapsed += deltaTime
	if timer.Elapsed >= timer.Duration {
		timer.Elapsed = math.Mod(timer.Elapsed, timer.Duration)
		timer.Finished = true
	}
	return timer.Finished
}
