package api

// SendMessageRequest запрос на отправку сообщения в чат транзакции
type SendMessageRequest struct {
	Content string `json:"conteudo"`
}

// AfterParam имя query-параметра для инкрементальной выборки сообщений
const AfterParam = "depois_de"
