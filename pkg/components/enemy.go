package components

// EnemyKind 敌人类型
type EnemyKind uint8

const (
	EnemyGoblin EnemyKind = iota
	EnemySpearGoblin
)

// String 返回敌人类型名称（同时用作配置文件中的键）
func (k EnemyKind) String() string {
	switch k {
	case EnemyGoblin:
		return "goblin"
	case EnemySpearGoblin:
		return "spearGoblin"
	default:
		return "unknown"
	}
}

// EnemyComponent 敌人组件
// 敌人同时携带 SideComponent，表示它来自哪个方位、进攻哪面城墙
type EnemyComponent struct {
	Kind   EnemyKind
	Health int     // 生命值，<= 0 时由 DeathSystem 结算
	Speed  float64 // 移动速度
	Exp    uint32  // 击杀后城堡获得的经验

	Damage         int     // 每次攻击对城墙造成的伤害
	AttackSpeed    float64 // 每秒攻击次数
	AttackCooldown float64 // 距下次攻击的剩余时间（秒）

	// Resolved 死亡已结算（经验已计入且实体已标记删除）
	// 保证同一敌人的经验只计入一次
	Resolved bool
}
