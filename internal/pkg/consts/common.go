package consts

// 事件类型，与客户端埋点及存储键保持一致
const (
	EventPV        = "pv"
	EventCardClick = "card_click"
	EventGameStart = "game_start"
	EventTimeSpent = "time_spent"
)

// ValidEventKinds 合法事件类型列表，顺序即查询聚合顺序
var ValidEventKinds = []string{EventPV, EventCardClick, EventGameStart, EventTimeSpent}

// IsValidEventKind 判断事件类型是否合法
func IsValidEventKind(kind string) bool {
	for _, k := range ValidEventKinds {
		if k == kind {
			return true
		}
	}
	return false
}

const (
	// GameFilterHot HOT 榜单标记
	GameFilterHot = "hot"
	// GameFilterNew 新游戏标记，同步时保留不动
	GameFilterNew = "new"
)
