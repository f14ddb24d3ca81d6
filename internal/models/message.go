package models

import "time"

// Message представляет сообщение чата транзакции.
// ID назначается сервером и монотонно растет в пределах транзакции,
// это единственный ключ упорядочивания. CreatedAt используется только для отображения.
type Message struct {
	CreatedAt  time.Time `json:"criado_em"`
	Content    string    `json:"conteudo"`
	SenderName string    `json:"remetente_nome,omitempty"`
	ID         int64     `json:"id"`
	SenderID   int64     `json:"remetente"`
	Read       bool      `json:"lida"`
}
