package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/arkfx/BiblioShare/internal/client/transaction"
	"github.com/arkfx/BiblioShare/internal/models"
)

func (c *Cli) runTransactions(ctx context.Context) error {
	profile, err := c.authService.CurrentProfile(ctx)
	if err != nil {
		return err
	}

	txs, err := c.transactions.List(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Transactions ===")
	c.io.Println()

	if len(txs) == 0 {
		c.io.Println("No transactions found.")
		return nil
	}

	for i := range txs {
		tx := &txs[i]
		role := "requester"
		if tx.OwnerID() == profile.ID {
			role = "owner"
		}
		c.io.Printf("#%d  %-10s %-10s %s\n", tx.ID, tx.Kind.Label(), tx.Status.Label(), tx.MainBook.Title)
		c.io.Printf("     with %s, you are the %s\n", participantLabel(counterpart(tx, profile.ID)), role)
		if actions := transaction.AllowedActions(tx, profile.ID).List(); len(actions) > 0 {
			c.io.Printf("     actions: %s\n", joinActions(actions))
		}
	}

	c.io.Println()
	c.io.Printf("Total: %d transaction(s)\n", len(txs))
	return nil
}

func (c *Cli) runTransaction(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	profile, err := c.authService.CurrentProfile(ctx)
	if err != nil {
		return err
	}

	tx, err := c.transactions.Get(ctx, id)
	if err != nil {
		return err
	}

	c.printTransaction(tx, profile.ID)
	return nil
}

func (c *Cli) runAction(ctx context.Context, name string, args []string) error {
	action, ok := transaction.ParseAction(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	id, err := parseID(args)
	if err != nil {
		return err
	}

	profile, err := c.authService.CurrentProfile(ctx)
	if err != nil {
		return err
	}

	// статус проверяется по свежей записи сервера
	tx, err := c.transactions.Get(ctx, id)
	if err != nil {
		return err
	}

	updated, err := c.transactions.Perform(ctx, tx, profile.ID, action)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Transaction #%d is now %s\n", updated.ID, updated.Status.Label())
	return nil
}

func (c *Cli) printTransaction(tx *models.Transaction, userID int64) {
	c.io.Printf("=== Transaction #%d ===\n", tx.ID)
	c.io.Println()
	c.io.Printf("Type:      %s\n", tx.Kind.Label())
	c.io.Printf("Status:    %s\n", tx.Status.Label())
	c.io.Printf("Book:      %s", tx.MainBook.Title)
	if tx.MainBook.Author != "" {
		c.io.Printf(" by %s", tx.MainBook.Author)
	}
	c.io.Println()
	c.io.Printf("Owner:     %s\n", participantLabel(tx.Owner))
	c.io.Printf("Requester: %s\n", participantLabel(tx.Requester))

	if extra := tx.ExtraRequestedBooks(); len(extra) > 0 {
		c.io.Printf("Also requested: %s\n", bookTitles(extra))
	}
	if len(tx.OfferedBooks) > 0 {
		c.io.Printf("Offered:   %s\n", bookTitles(tx.OfferedBooks))
	}
	if tx.ReturnDeadline != nil && *tx.ReturnDeadline != "" {
		c.io.Printf("Return by: %s\n", *tx.ReturnDeadline)
	}
	if !tx.CreatedAt.IsZero() {
		c.io.Printf("Created:   %s\n", tx.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	c.io.Println()
	if actions := transaction.AllowedActions(tx, userID).List(); len(actions) > 0 {
		c.io.Printf("Available actions: %s\n", joinActions(actions))
	} else {
		c.io.Println("No actions available.")
	}
}

func joinActions(actions []transaction.Action) string {
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
