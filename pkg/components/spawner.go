package components

// EnemySpawnBuffs 刷怪增益倍率
// 敌人属性 = 类型基础属性 × 对应倍率，默认全部为 1.0
type EnemySpawnBuffs struct {
	Health      float64
	Speed       float64
	Exp         float64
	Damage      float64
	AttackSpeed float64
}

// DefaultEnemySpawnBuffs 返回无增益的倍率
func DefaultEnemySpawnBuffs() EnemySpawnBuffs {
	return EnemySpawnBuffs{
		Health:      1.0,
		Speed:       1.0,
		Exp:         1.0,
		Damage:      1.0,
		AttackSpeed: 1.0,
	}
}

// SpawnerComponent 刷怪点组件（每个方位一个）
// 计时器每完成一次，在刷怪点周围的圆上均匀生成 NumberPerWave 个敌人
type SpawnerComponent struct {
	NumberPerWave uint32         // 每波敌人数量
	Radius        float64        // 敌人分布圆的半径
	Timer         RepeatingTimer // 刷怪周期计时器
	Buffs         EnemySpawnBuffs
	WavesSpawned  int // 已生成的波次数
}
