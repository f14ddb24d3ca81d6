package api

import (
	"bytes"
	"encoding/json"
)

// List декодирует список, который сервер возвращает либо массивом,
// либо объектом пагинации {"results": [...]}.
// Объект без results считается пустым списком.
type List[T any] []T

type paginated[T any] struct {
	Results []T `json:"results"`
}

// UnmarshalJSON принимает обе формы ответа
func (l *List[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = List[T]{}
		return nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var page paginated[T]
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return err
	}
	if page.Results == nil {
		page.Results = []T{}
	}
	*l = page.Results
	return nil
}
