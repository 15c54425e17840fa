package logger

const SessionStartMsg = "遊戲開始！session: %s"
const SessionEndMsg = "遊戲結束 比分 %d:%d"

const ConfigLoadedMsg = "設定檔已讀取: %s"
const ConfigDefaultMsg = "找不到設定檔，使用預設值"
const ConfigChangedMsg = "設定檔已變更: %s"

const ScreenSizeMsg = "畫面大小 %dx%d"
const ScreenTooSmallMsg = "畫面太小 %dx%d，至少需要 %dx%d"

const GoalMsg = "%s 得分！比分 %d:%d"
const PauseMsg = "暫停: %t"

const SoundUnavailableMsg = "無法開啟音效裝置，靜音進行: %v"
const QuitRequestedMsg = "收到離開要求: %s"
