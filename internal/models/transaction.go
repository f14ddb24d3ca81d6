package models

import "time"

// Status статус транзакции. Авторитетен только ответ сервера.
type Status string

const (
	StatusPending      Status = "PENDENTE"
	StatusAccepted     Status = "ACEITA"
	StatusInPossession Status = "EM_POSSE"
	StatusCompleted    Status = "CONCLUIDA"
	StatusCanceled     Status = "CANCELADA"
)

var statusLabels = map[Status]string{
	StatusPending:      "Pendente",
	StatusAccepted:     "Aceita",
	StatusInPossession: "Em posse",
	StatusCompleted:    "Concluída",
	StatusCanceled:     "Cancelada",
}

// Label возвращает подпись статуса для отображения
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsTerminal сообщает, что из статуса нет переходов
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Kind тип транзакции
type Kind string

const (
	KindDonation Kind = "DOACAO"
	KindLoan     Kind = "EMPRESTIMO"
	KindRental   Kind = "ALUGUEL"
	KindTrade    Kind = "TROCA"
)

var kindLabels = map[Kind]string{
	KindDonation: "Doação",
	KindLoan:     "Empréstimo",
	KindRental:   "Aluguel",
	KindTrade:    "Troca",
}

// Label возвращает подпись типа для отображения
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// Participant краткая информация об участнике транзакции
type Participant struct {
	City     *string `json:"cidade"`
	State    *string `json:"estado"`
	FullName string  `json:"nome_completo"`
	ID       int64   `json:"id"`
}

// Location возвращает "город/штат" участника
func (p Participant) Location() string {
	return joinLocation(p.City, p.State)
}

// BookSummary краткая информация о книге в транзакции
type BookSummary struct {
	OwnerCity  *string  `json:"dono_cidade"`
	OwnerState *string  `json:"dono_estado"`
	Title      string   `json:"titulo"`
	Author     string   `json:"autor"`
	OwnerName  string   `json:"dono_nome"`
	Modalities []string `json:"modalidades"`
	ID         int64    `json:"id"`
}

// Transaction представляет транзакцию между владельцем книги и запрашивающим.
// Клиент никогда не меняет Status локально, только заменяет запись целиком ответом сервера.
type Transaction struct {
	CreatedAt      time.Time     `json:"criado_em"`
	UpdatedAt      time.Time     `json:"atualizado_em"`
	ReturnDeadline *string       `json:"data_limite_devolucao"`
	Kind           Kind          `json:"tipo"`
	Status         Status        `json:"status"`
	Owner          Participant   `json:"dono"`
	Requester      Participant   `json:"solicitante"`
	OfferedBooks   []BookSummary `json:"livros_oferecidos"`
	RequestedBooks []BookSummary `json:"livros_solicitados"`
	MainBook       BookSummary   `json:"livro_principal"`
	ID             int64         `json:"id"`
}

// OwnerID возвращает ID владельца книги
func (t *Transaction) OwnerID() int64 {
	return t.Owner.ID
}

// RequesterID возвращает ID запрашивающего пользователя
func (t *Transaction) RequesterID() int64 {
	return t.Requester.ID
}

// ExtraRequestedBooks возвращает запрошенные книги без основной
func (t *Transaction) ExtraRequestedBooks() []BookSummary {
	extra := make([]BookSummary, 0, len(t.RequestedBooks))
	for _, book := range t.RequestedBooks {
		if book.ID != t.MainBook.ID {
			extra = append(extra, book)
		}
	}
	return extra
}
