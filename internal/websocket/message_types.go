package websocket

// Типы сообщений ленты таблицы лидеров
const (
	// RESULT_RECORDED сообщает, что сохранён новый результат и таблицу лидеров стоит перезапросить
	RESULT_RECORDED = "RESULT_RECORDED"
)

// Message — конверт сообщения, отправляемого клиентам
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// ResultRecordedData — полезная нагрузка RESULT_RECORDED
type ResultRecordedData struct {
	ResultID   uint `json:"result_id"`
	CategoryID uint `json:"category_id"`
	Score      int  `json:"score"`
}
