package transaction

import "github.com/arkfx/BiblioShare/internal/models"

// Action действие пользователя над транзакцией
type Action string

const (
	ActionAccept Action = "accept"
	ActionRefuse Action = "refuse"
	ActionCancel Action = "cancel"
)

var endpoints = map[Action]string{
	ActionAccept: "aceitar",
	ActionRefuse: "recusar",
	ActionCancel: "cancelar",
}

// Endpoint возвращает сегмент пути действия на сервере
func (a Action) Endpoint() string {
	return endpoints[a]
}

// ParseAction разбирает имя действия (accept, refuse, cancel)
func ParseAction(s string) (Action, bool) {
	a := Action(s)
	_, ok := endpoints[a]
	return a, ok
}

// ActionSet набор разрешенных действий
type ActionSet struct {
	Accept bool
	Refuse bool
	Cancel bool
}

// Has сообщает, входит ли действие в набор
func (s ActionSet) Has(a Action) bool {
	switch a {
	case ActionAccept:
		return s.Accept
	case ActionRefuse:
		return s.Refuse
	case ActionCancel:
		return s.Cancel
	}
	return false
}

// Empty сообщает, что ни одно действие не разрешено
func (s ActionSet) Empty() bool {
	return !s.Accept && !s.Refuse && !s.Cancel
}

// List возвращает разрешенные действия в порядке accept, refuse, cancel
func (s ActionSet) List() []Action {
	var out []Action
	for _, a := range []Action{ActionAccept, ActionRefuse, ActionCancel} {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// AllowedActions определяет, какие действия доступны actorID.
// Принять или отклонить может только владелец книги, пока транзакция ожидает ответа.
// Отменить может любой участник, пока транзакция ожидает ответа или принята.
// EM_POSSE и завершенные статусы ничего не разрешают
func AllowedActions(tx *models.Transaction, actorID int64) ActionSet {
	if tx == nil {
		return ActionSet{}
	}

	isOwner := actorID == tx.OwnerID()
	isRequester := actorID == tx.RequesterID()

	var set ActionSet
	if tx.Status == models.StatusPending && isOwner {
		set.Accept = true
		set.Refuse = true
	}
	if (tx.Status == models.StatusPending || tx.Status == models.StatusAccepted) && (isOwner || isRequester) {
		set.Cancel = true
	}
	return set
}
