package toggle_strategic_block

// ToggleStrategicResponse новое состояние стратегической блокировки
type ToggleStrategicResponse struct {
	Time      string `json:"time"`
	Strategic bool   `json:"strategic"`
}
