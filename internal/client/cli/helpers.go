package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arkfx/BiblioShare/internal/models"
)

// parseID читает ID из первого аргумента
func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("transaction id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction id %q", args[0])
	}
	return id, nil
}

// counterpart возвращает другого участника транзакции
func counterpart(tx *models.Transaction, userID int64) models.Participant {
	if tx.OwnerID() == userID {
		return tx.Requester
	}
	return tx.Owner
}

func participantLabel(p models.Participant) string {
	if loc := p.Location(); loc != "" {
		return fmt.Sprintf("%s (%s)", p.FullName, loc)
	}
	return p.FullName
}

func bookTitles(books []models.BookSummary) string {
	titles := make([]string, 0, len(books))
	for _, b := range books {
		titles = append(titles, b.Title)
	}
	return strings.Join(titles, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
