package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkfx/BiblioShare/internal/models"
)

func TestList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantIDs []int64
		wantErr bool
	}{
		{
			name:    "plain array",
			body:    `[{"id": 1, "conteudo": "a"}, {"id": 2, "conteudo": "b"}]`,
			wantIDs: []int64{1, 2},
		},
		{
			name:    "paginated object",
			body:    `{"count": 1, "results": [{"id": 5, "conteudo": "x"}]}`,
			wantIDs: []int64{5},
		},
		{
			name:    "object without results",
			body:    `{"count": 0}`,
			wantIDs: []int64{},
		},
		{
			name:    "null",
			body:    `null`,
			wantIDs: []int64{},
		},
		{
			name:    "invalid",
			body:    `"text"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got List[models.Message]
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
