package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/arkfx/BiblioShare/internal/client/api"
	"github.com/arkfx/BiblioShare/internal/client/chat"
	"github.com/arkfx/BiblioShare/internal/models"
)

// QuitCommand завершает интерактивный чат
const QuitCommand = "/quit"

func (c *Cli) runChat(ctx context.Context, args []string) error {
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

	c.io.Printf("=== Chat: transaction #%d (%s) ===\n", tx.ID, tx.MainBook.Title)
	c.io.Printf("Type a message and press Enter. %s leaves the chat.\n", QuitCommand)
	c.io.Println()

	// Подписчику отдается только последний снимок: вывод строится по highWaterMark
	updates := make(chan chat.Snapshot, 1)
	unsubscribe := c.chat.Subscribe(func(s chat.Snapshot) {
		for {
			select {
			case updates <- s:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	defer close(done)
	lines := c.readLines(done)

	c.chat.Start(ctx, tx.ID)
	defer c.chat.Stop()

	names := map[int64]string{
		tx.Owner.ID:     tx.Owner.FullName,
		tx.Requester.ID: tx.Requester.FullName,
	}
	printer := &messagePrinter{cli: c, userID: profile.ID, names: names}

	for {
		select {
		case <-ctx.Done():
			return nil

		case s := <-updates:
			printer.print(s)
			if s.Err != nil && errors.Is(s.Err, api.ErrUnauthorized) {
				return s.Err
			}

		case line, ok := <-lines:
			if !ok || line == QuitCommand {
				return nil
			}
			if line = strings.TrimSpace(line); line == "" {
				continue
			}
			if _, err := c.chat.Send(ctx, line); err != nil {
				if errors.Is(err, api.ErrUnauthorized) {
					return err
				}
				c.io.Printf("! message not sent: %s\n", api.UserMessage(err))
			}
		}
	}
}

// readLines читает строки ввода в отдельной горутине до ошибки чтения или закрытия done
func (c *Cli) readLines(done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for {
			line, err := c.io.ReadInput("")
			if err != nil {
				return
			}
			select {
			case lines <- line:
			case <-done:
				return
			}
		}
	}()
	return lines
}

// messagePrinter печатает только сообщения, которые еще не выводились
type messagePrinter struct {
	cli       *Cli
	names     map[int64]string
	status    string
	lastShown int64
	userID    int64
}

func (p *messagePrinter) print(s chat.Snapshot) {
	for _, msg := range s.Messages {
		if msg.ID <= p.lastShown {
			continue
		}
		p.cli.io.Printf("[%s] %s: %s\n", msg.CreatedAt.Local().Format("15:04"), p.sender(msg), msg.Content)
		p.lastShown = msg.ID
	}

	if s.Status == p.status {
		return
	}
	p.status = s.Status
	switch s.Status {
	case chat.StatusOffline:
		p.cli.io.Printf("-- %s: %s\n", chat.SyncErrorText, chat.StatusOffline)
	case chat.StatusEmpty:
		p.cli.io.Printf("-- %s\n", chat.StatusEmpty)
	}
}

func (p *messagePrinter) sender(msg models.Message) string {
	if msg.SenderID == p.userID {
		return "you"
	}
	if msg.SenderName != "" {
		return msg.SenderName
	}
	if name, ok := p.names[msg.SenderID]; ok && name != "" {
		return name
	}
	return "user"
}
