package systems

import (
	"math"
	"testing"

	"github.com/gonewx/fourwalls/pkg/components"
)

// TestWallHealthNeverExceedsMax 任意伤害/治疗序列后生命值不超过上限
func TestWallHealthNeverExceedsMax(t *testing.T) {
	ops := []struct {
		heal   bool
		amount int
	}{
		{true, 30}, {false, 20}, {true, 5}, {true, 100}, {false, 150},
		{true, 10}, {false, 0}, {true, 1000}, {false, 99}, {true, 1},
	}

	wall := &components.WallComponent{Health: 100, MaxHealth: 100}
	for i, op := range ops {
		if op.heal {
			HealWall(wall, op.amount)
		} else {
			ApplyWallDamage(wall, op.amount)
		}
		if wall.Health > wall.MaxHealth {
			t.Fatalf("step %d: health %d > max %d", i, wall.Health, wall.MaxHealth)
		}
	}
}

// TestApplyWallDamageGoesNegative 伤害不做下限截断
func TestApplyWallDamageGoesNegative(t *testing.T) {
	wall := &components.WallComponent{Health: 100, MaxHealth: 100}
	ApplyWallDamage(wall, 150)
	if wall.Health != -50 {
		t.Errorf("Health = %d, want -50", wall.Health)
	}
	HealWall(wall, 20)
	if wall.Health != -30 {
		t.Errorf("Health after heal = %d, want -30", wall.Health)
	}
}

// TestIncreaseWallMaxHealthKeepsDeficit 提升上限时缺口不变
func TestIncreaseWallMaxHealthKeepsDeficit(t *testing.T) {
	tests := []struct {
		name            string
		health, max, by int
	}{
		{"full", 100, 100, 25},
		{"damaged", 40, 100, 25},
		{"destroyed", -10, 100, 50},
		{"zero", 70, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wall := &components.WallComponent{Health: tt.health, MaxHealth: tt.max}
			deficit := wall.MaxHealth - wall.Health
			IncreaseWallMaxHealth(wall, tt.by)
			if wall.Health != tt.health+tt.by || wall.MaxHealth != tt.max+tt.by {
				t.Errorf("wall = %+v", *wall)
			}
			if got := wall.MaxHealth - wall.Health; got != deficit {
				t.Errorf("deficit = %d, want %d", got, deficit)
			}
		})
	}
}

// TestTryLevelUpExample 10 点阈值、1.2 增长率，获得 10 经验后升到 1 级
func TestTryLevelUpExample(t *testing.T) {
	castle := &components.CastleComponent{NextLevelExp: 10, NextLevelExpGrowth: 1.2}
	CreditExperience(castle, 10)
	if !TryLevelUp(castle) {
		t.Fatal("expected level up")
	}
	if castle.Level != 1 || castle.Exp != 0 || castle.NextLevelExp != 12 {
		t.Errorf("castle = %+v, want level=1 exp=0 next=12", *castle)
	}
}

// TestTryLevelUpBelowThreshold 经验不足时不升级也不下溢
func TestTryLevelUpBelowThreshold(t *testing.T) {
	castle := &components.CastleComponent{Exp: 9, NextLevelExp: 10, NextLevelExpGrowth: 1.2}
	if TryLevelUp(castle) {
		t.Error("unexpected level up")
	}
	if castle.Exp != 9 || castle.Level != 0 {
		t.Errorf("castle changed: %+v", *castle)
	}
}

// TestTryLevelUpOvershoot 一次最多升一级，溢出经验留到后续调用
func TestTryLevelUpOvershoot(t *testing.T) {
	castle := &components.CastleComponent{NextLevelExp: 10, NextLevelExpGrowth: 1.2}
	CreditExperience(castle, 30)

	// 10 -> 12 -> 14，共需 22 经验升两级，剩余 8
	wantLevels := []uint32{1, 2}
	for _, want := range wantLevels {
		if !TryLevelUp(castle) {
			t.Fatalf("expected level up to %d", want)
		}
		if castle.Level != want {
			t.Errorf("Level = %d, want %d", castle.Level, want)
		}
	}
	if TryLevelUp(castle) {
		t.Error("third level up should not happen")
	}
	if castle.Exp != 8 || castle.NextLevelExp != 14 {
		t.Errorf("castle = %+v, want exp=8 next=14", *castle)
	}
}

// TestLevelUpInvariants 任意经验序列下等级单调递增，升级后经验低于阈值
func TestLevelUpInvariants(t *testing.T) {
	castle := &components.CastleComponent{NextLevelExp: 10, NextLevelExpGrowth: 1.2}
	gains := []uint32{3, 7, 0, 15, 1, 2, 40, 9, 11, 5, 100, 0, 0, 0, 0, 0}
	prevLevel := castle.Level

	for i, g := range gains {
		CreditExperience(castle, g)
		before := castle.Exp
		if TryLevelUp(castle) {
			if castle.Level != prevLevel+1 {
				t.Fatalf("step %d: level jumped from %d to %d", i, prevLevel, castle.Level)
			}
			if castle.Exp >= before {
				t.Fatalf("step %d: exp did not decrease", i)
			}
		}
		if castle.Level < prevLevel {
			t.Fatalf("step %d: level decreased", i)
		}
		prevLevel = castle.Level
	}
}

// TestLevelUpExpBelowThresholdAfterSingleCredit 单次经验不超过两倍阈值时，升级后经验低于新阈值
func TestLevelUpExpBelowThresholdAfterSingleCredit(t *testing.T) {
	for gain := uint32(10); gain < 22; gain++ {
		castle := &components.CastleComponent{NextLevelExp: 10, NextLevelExpGrowth: 1.2}
		CreditExperience(castle, gain)
		TryLevelUp(castle)
		if castle.Exp >= castle.NextLevelExp {
			t.Errorf("gain %d: exp %d >= next %d", gain, castle.Exp, castle.NextLevelExp)
		}
	}
}

// TestThresholdSaturates 阈值增长超过 uint32 上限时停在 MaxUint32，不回绕
func TestThresholdSaturates(t *testing.T) {
	tests := []struct {
		name     string
		next     uint32
		growth   float64
		wantNext uint32
	}{
		{"正常增长", 4_000_000, 1.2, 4_800_000},
		{"乘积超出上限", 4_000_000_000, 1.2, math.MaxUint32},
		{"已在上限", math.MaxUint32, 1.5, math.MaxUint32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			castle := &components.CastleComponent{Exp: tt.next, NextLevelExp: tt.next, NextLevelExpGrowth: tt.growth}
			if !TryLevelUp(castle) {
				t.Fatal("expected level up")
			}
			if castle.NextLevelExp != tt.wantNext {
				t.Errorf("NextLevelExp = %d, want %d", castle.NextLevelExp, tt.wantNext)
			}
			if castle.NextLevelExp < tt.next {
				t.Errorf("threshold decreased from %d to %d", tt.next, castle.NextLevelExp)
			}
		})
	}
}

// TestCreditExperienceSaturates 经验累加不回绕
func TestCreditExperienceSaturates(t *testing.T) {
	castle := &components.CastleComponent{Exp: math.MaxUint32 - 5, NextLevelExp: math.MaxUint32, NextLevelExpGrowth: 1.2}
	CreditExperience(castle, 10)
	if castle.Exp != math.MaxUint32 {
		t.Errorf("Exp = %d, want %d", castle.Exp, uint32(math.MaxUint32))
	}

	credits := []ExpCredit{{Exp: math.MaxUint32 - 1}, {Exp: 2}, {Exp: 3}}
	if got := SumCredits(credits); got != math.MaxUint32 {
		t.Errorf("SumCredits = %d, want %d", got, uint32(math.MaxUint32))
	}
}

// TestTickTimer 测试循环计时器
func TestTickTimer(t *testing.T) {
	tests := []struct {
		name        string
		duration    float64
		steps       []float64
		wantFinish  []bool
		wantElapsed float64
	}{
		{"not yet", 5, []float64{1, 2}, []bool{false, false}, 3},
		{"exact", 5, []float64{2.5, 2.5}, []bool{false, true}, 0},
		{"keeps remainder", 5, []float64{4, 2}, []bool{false, true}, 1},
		{"multiple periods report once", 5, []float64{12}, []bool{true}, 2},
		{"zero duration never fires", 0, []float64{1, 1}, []bool{false, false}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := &components.RepeatingTimer{Duration: tt.duration}
			for i, dt := range tt.steps {
				if got := TickTimer(timer, dt); got != tt.wantFinish[i] {
					t.Errorf("step %d: finished = %v, want %v", i, got, tt.wantFinish[i])
				}
				if timer.Finished != tt.wantFinish[i] {
					t.Errorf("step %d: Finished field = %v", i, timer.Finished)
				}
			}
			if timer.Elapsed != tt.wantElapsed {
				t.Errorf("Elapsed = %v, want %v", timer.Elapsed, tt.wantElapsed)
			}
		})
	}
}
